package magnitude

import "errors"

// ErrDivisionByZero is returned by DivMod when the divisor is zero.
var ErrDivisionByZero = errors.New("magnitude: division by zero")

// DivMod returns q, r such that x = q*y + r and 0 <= r < y, using
// Knuth's Algorithm D adapted to base Base. x and y must both be
// non-negative magnitudes; y must be non-zero.
func DivMod(x, y Magnitude) (q, r Magnitude, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if x.IsZero() {
		return nil, nil, nil
	}
	if Compare(x, y) < 0 {
		return nil, x.Clone(), nil
	}
	if len(y) == 1 {
		qq, rr := divScalar(x, uint64(y[0]))
		return qq, FromUint64(rr), nil
	}

	// Normalize: scale both operands so y's leading limb is >= Base/2,
	// bounding the trial-digit error in the main loop to at most two
	// corrections (Knuth's analysis).
	d := uint64(Base) / (uint64(y[len(y)-1]) + 1)
	a := x
	b := y
	if d != 1 {
		a = mulScalar(x, d)
		b = mulScalar(y, d)
	} else {
		a = x.Clone()
		b = y.Clone()
	}

	n := len(a)
	m := len(b)
	qOut := make(Magnitude, n)

	// Rolling remainder window: a fixed len(a)+2 buffer with a moving
	// head index, so prepending the next dividend limb is O(1) instead
	// of shifting the whole window.
	window := make([]uint32, n+2)
	head := n + 1
	wlen := 0

	for i := n - 1; i >= 0; i-- {
		if wlen == 0 {
			window[head] = a[i]
			wlen = 1
		} else {
			head--
			window[head] = a[i]
			wlen++
		}
		for wlen > 0 && window[head+wlen-1] == 0 {
			wlen--
		}

		var s1, s2 uint64
		if wlen > m {
			s1 = uint64(window[head+m])
		}
		if wlen > m-1 {
			s2 = uint64(window[head+m-1])
		}
		dHat := (s1*Base + s2) / uint64(b[m-1])
		if dHat >= Base {
			dHat = Base - 1
		}

		bd := mulScalar(b, dHat)
		for compareWindow(window, head, wlen, bd) < 0 {
			dHat--
			bd = Sub(bd, b)
		}

		subWindow(window, head, wlen, bd)
		for wlen > 0 && window[head+wlen-1] == 0 {
			wlen--
		}

		qOut[i] = uint32(dHat)
	}

	q = norm(qOut)

	rem := make(Magnitude, wlen)
	for i := 0; i < wlen; i++ {
		rem[i] = window[head+i]
	}
	rem = norm(rem)

	if d != 1 {
		rem, _ = divScalar(rem, d)
	}
	return q, rem, nil
}

// compareWindow compares the logical value held in window[head:head+wlen]
// against bd, using the same most-significant-limb-first rule as Compare.
func compareWindow(window []uint32, head, wlen int, bd Magnitude) int {
	if wlen != len(bd) {
		if wlen < len(bd) {
			return -1
		}
		return 1
	}
	for k := wlen - 1; k >= 0; k-- {
		wv := window[head+k]
		bv := bd[k]
		if wv != bv {
			if wv < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subWindow subtracts bd from the logical value held in
// window[head:head+wlen], in place, via a borrow chain. The caller
// must ensure the window value is >= bd.
func subWindow(window []uint32, head, wlen int, bd Magnitude) {
	var borrow int32
	for k := 0; k < len(bd); k++ {
		cur := int32(window[head+k]) - borrow - int32(bd[k])
		if cur < 0 {
			cur += Base
			borrow = 1
		} else {
			borrow = 0
		}
		window[head+k] = uint32(cur)
	}
	for k := len(bd); borrow != 0 && k < wlen; k++ {
		cur := int32(window[head+k]) - borrow
		if cur < 0 {
			window[head+k] = uint32(cur + Base)
			borrow = 1
		} else {
			window[head+k] = uint32(cur)
			borrow = 0
		}
	}
}
