package magnitude

// mulScalar returns a*m where m is a single base-Base digit. Its
// callers pass the Knuth-D normalization factor and trial quotient
// digits, both < Base, as a plain uint64 for accumulator convenience.
func mulScalar(a Magnitude, m uint64) Magnitude {
	if m == 0 || len(a) == 0 {
		return nil
	}
	res := make(Magnitude, len(a))
	var carry uint64
	for i, limb := range a {
		cur := carry + uint64(limb)*m
		res[i] = uint32(cur % Base)
		carry = cur / Base
	}
	for carry > 0 {
		res = append(res, uint32(carry%Base))
		carry /= Base
	}
	return norm(res)
}

// divScalar divides a by the single digit d, returning the quotient
// and the remainder. d must be non-zero.
func divScalar(a Magnitude, d uint64) (q Magnitude, r uint64) {
	q = make(Magnitude, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		cur := r*Base + uint64(a[i])
		q[i] = uint32(cur / d)
		r = cur % d
	}
	return norm(q), r
}
