package bigint

import "github.com/opd-ai/go-bigint/internal/magnitude"

var one = magnitude.FromUint64(1)

// addMagnitudes implements the sign algebra shared by Add and Sub: it
// combines a signed magnitude xs/xm with a signed magnitude ys/ym and
// returns the canonical sign/magnitude of the sum.
func addMagnitudes(xs int8, xm magnitude.Magnitude, ys int8, ym magnitude.Magnitude) (int8, magnitude.Magnitude) {
	if xs == 0 {
		return ys, ym.Clone()
	}
	if ys == 0 {
		return xs, xm.Clone()
	}
	if xs == ys {
		return xs, magnitude.Add(xm, ym)
	}
	switch magnitude.Compare(xm, ym) {
	case 0:
		return 0, nil
	case 1:
		return xs, magnitude.Sub(xm, ym)
	default:
		return ys, magnitude.Sub(ym, xm)
	}
}

// Add returns x+y as a new value; x and y are unchanged.
func (x *BigInt) Add(y *BigInt) *BigInt {
	s, m := addMagnitudes(x.sign, x.mag, y.sign, y.mag)
	return &BigInt{sign: s, mag: m}
}

// Sub returns x-y as a new value; x and y are unchanged.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	s, m := addMagnitudes(x.sign, x.mag, -y.sign, y.mag)
	return &BigInt{sign: s, mag: m}
}

// Mul returns x*y as a new value; x and y are unchanged.
func (x *BigInt) Mul(y *BigInt) *BigInt {
	if x.sign == 0 || y.sign == 0 {
		return &BigInt{}
	}
	return &BigInt{sign: x.sign * y.sign, mag: magnitude.Mul(x.mag, y.mag)}
}

// QuoRem returns the floor-rounded quotient and remainder of x/y: the
// quotient rounds toward negative infinity, and the remainder is zero
// or shares y's sign. It returns ErrDivisionByZero if y is zero.
//
// When x is zero the result is (0, 0) with both results carrying
// sign zero, never inheriting y's sign.
func (x *BigInt) QuoRem(y *BigInt) (q, r *BigInt, err error) {
	qabs, rabs, err := magnitude.DivMod(x.mag, y.mag)
	if err != nil {
		return nil, nil, err
	}
	if x.sign == 0 {
		return &BigInt{}, &BigInt{}, nil
	}

	q, r = &BigInt{}, &BigInt{}
	if x.sign == y.sign {
		q.setNormalized(1, qabs)
		r.setNormalized(y.sign, rabs)
		return q, r, nil
	}

	if rabs.IsZero() {
		q.setNormalized(-1, qabs)
		return q, r, nil
	}

	qabsPlusOne := magnitude.Add(qabs, one)
	q.setNormalized(-1, qabsPlusOne)
	r.setNormalized(y.sign, magnitude.Sub(y.mag, rabs))
	return q, r, nil
}

// Div returns the floor-rounded quotient x/y. It returns
// ErrDivisionByZero if y is zero.
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Mod returns x - (x/y)*y using the floor-rounded quotient, so the
// result is zero or shares y's sign. It returns ErrDivisionByZero if
// y is zero.
func (x *BigInt) Mod(y *BigInt) (*BigInt, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AddAssign sets z to z+y and returns z.
func (z *BigInt) AddAssign(y *BigInt) *BigInt {
	s, m := addMagnitudes(z.sign, z.mag, y.sign, y.mag)
	z.sign, z.mag = s, m
	return z
}

// SubAssign sets z to z-y and returns z.
func (z *BigInt) SubAssign(y *BigInt) *BigInt {
	s, m := addMagnitudes(z.sign, z.mag, -y.sign, y.mag)
	z.sign, z.mag = s, m
	return z
}

// MulAssign sets z to z*y and returns z.
func (z *BigInt) MulAssign(y *BigInt) *BigInt {
	result := z.Mul(y)
	z.sign, z.mag = result.sign, result.mag
	return z
}

// DivAssign sets z to the floor-rounded quotient z/y. On
// ErrDivisionByZero, z is left unchanged.
func (z *BigInt) DivAssign(y *BigInt) error {
	result, err := z.Div(y)
	if err != nil {
		return err
	}
	z.sign, z.mag = result.sign, result.mag
	return nil
}

// ModAssign sets z to z mod y (floor-rounded convention). On
// ErrDivisionByZero, z is left unchanged.
func (z *BigInt) ModAssign(y *BigInt) error {
	result, err := z.Mod(y)
	if err != nil {
		return err
	}
	z.sign, z.mag = result.sign, result.mag
	return nil
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater
// than y. It defines a strict total order consistent with Add and
// Mul by positive values.
func (x *BigInt) Cmp(y *BigInt) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	switch x.sign {
	case 0:
		return 0
	case 1:
		return magnitude.Compare(x.mag, y.mag)
	default:
		return -magnitude.Compare(x.mag, y.mag)
	}
}

// Less reports whether x < y.
func (x *BigInt) Less(y *BigInt) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x *BigInt) LessOrEqual(y *BigInt) bool { return x.Cmp(y) <= 0 }

// Equal reports whether x == y.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// NotEqual reports whether x != y.
func (x *BigInt) NotEqual(y *BigInt) bool { return x.Cmp(y) != 0 }

// GreaterOrEqual reports whether x >= y.
func (x *BigInt) GreaterOrEqual(y *BigInt) bool { return x.Cmp(y) >= 0 }

// Greater reports whether x > y.
func (x *BigInt) Greater(y *BigInt) bool { return x.Cmp(y) > 0 }

// Cmp is the free-function form of (*BigInt).Cmp, matching the
// source's free comparison operators.
func Cmp(x, y *BigInt) int { return x.Cmp(y) }

// Less is the free-function form of (*BigInt).Less.
func Less(x, y *BigInt) bool { return x.Less(y) }

// Greater is the free-function form of (*BigInt).Greater.
func Greater(x, y *BigInt) bool { return x.Greater(y) }
