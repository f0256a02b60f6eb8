package magnitude

// Add returns the magnitude sum a+b.
func Add(a, b Magnitude) Magnitude {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make(Magnitude, n)
	var carry uint32
	for i := 0; i < n; i++ {
		cur := carry
		if i < len(a) {
			cur += a[i]
		}
		if i < len(b) {
			cur += b[i]
		}
		if cur >= Base {
			cur -= Base
			carry = 1
		} else {
			carry = 0
		}
		res[i] = cur
	}
	if carry != 0 {
		res = append(res, carry)
	}
	return norm(res)
}

// Sub returns the magnitude difference a-b. The caller must ensure
// a >= b (by Compare); the result is undefined otherwise.
func Sub(a, b Magnitude) Magnitude {
	res := make(Magnitude, len(a))
	var borrow int32
	for i := range a {
		cur := int32(a[i]) - borrow
		if i < len(b) {
			cur -= int32(b[i])
		}
		if cur < 0 {
			cur += Base
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = uint32(cur)
	}
	return norm(res)
}
