package magnitude

// Size thresholds that select the multiplication algorithm. Schoolbook
// has a large constant-factor advantage at small sizes; FFT wins once
// the quadratic cost of schoolbook outgrows the O(n log n) cost of a
// transform plus its rounding overhead.
const (
	schoolbookMaxLen = 64
	schoolbookMaxSum = 256
)

// Mul returns the magnitude product a*b, dispatching between
// schoolbook and FFT multiplication by operand size. Algorithm choice
// never affects the result: mulSchoolbook and mulFFT must agree on
// every input, which the package's tests verify directly.
func Mul(a, b Magnitude) Magnitude {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if (len(a) <= schoolbookMaxLen && len(b) <= schoolbookMaxLen) || len(a)+len(b) <= schoolbookMaxSum {
		return mulSchoolbook(a, b)
	}
	return mulFFT(a, b)
}

// mulSchoolbook computes a*b in O(len(a)*len(b)) with base-Base carry
// propagation.
func mulSchoolbook(a, b Magnitude) Magnitude {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	res := make([]uint64, len(a)+len(b))
	for i, av := range a {
		var carry uint64
		for j, bv := range b {
			cur := res[i+j] + carry + uint64(av)*uint64(bv)
			res[i+j] = cur % Base
			carry = cur / Base
		}
		k := i + len(b)
		for carry > 0 {
			cur := res[k] + carry
			res[k] = cur % Base
			carry = cur / Base
			k++
		}
	}
	out := make(Magnitude, len(res))
	for i, v := range res {
		out[i] = uint32(v)
	}
	return norm(out)
}

// mulBlockSchoolbook computes a*b by splitting the larger operand into
// chunks no longer than fftSafeLimbBound/4 limbs and summing the
// shifted partial products. It is the fallback used when the product
// would otherwise require an FFT length beyond fftSafeLimbBound (see
// fft.go): each chunk-by-b multiply stays within a size Mul will
// itself route back through the schoolbook or FFT path safely, so the
// recursion always terminates in a safe size.
func mulBlockSchoolbook(a, b Magnitude) Magnitude {
	big, small := a, b
	if len(small) > len(big) {
		big, small = small, big
	}
	const chunk = fftSafeLimbBound / 4
	var total Magnitude
	for offset := 0; offset < len(big); offset += chunk {
		end := offset + chunk
		if end > len(big) {
			end = len(big)
		}
		part := Mul(big[offset:end], small)
		if part.IsZero() {
			continue
		}
		shifted := make(Magnitude, offset+len(part))
		copy(shifted[offset:], part)
		total = Add(total, shifted)
	}
	return norm(total)
}
