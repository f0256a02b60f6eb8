// Package bigint provides a signed arbitrary-precision integer type.
//
// BigInt represents integers of unbounded magnitude and implements
// addition, subtraction, multiplication, Euclidean-style (floor
// rounded) division and modulus, decimal text I/O, and the full
// order/equality relation. The arithmetic kernel — multi-precision
// add/subtract, hybrid schoolbook/FFT multiplication, and Knuth-D
// long division — lives in internal/magnitude; this package attaches a
// sign to a magnitude and routes operations to the kernel with the
// correct sign accounting.
//
// Example usage:
//
//	a := bigint.NewFromInt64(99999)
//	b := bigint.NewFromInt64(1)
//	sum := bigint.Add(a, b)
//	fmt.Println(sum.String()) // "100000"
package bigint

import "github.com/opd-ai/go-bigint/internal/magnitude"

// BigInt is a signed arbitrary-precision integer. The zero value is
// the integer zero and is ready to use.
//
// Copying the struct by value shares its limb slice; Set and Clone make
// independent copies. No operation modifies a limb slice in place, so
// aliasing between distinct values never occurs at the logical level.
type BigInt struct {
	sign int8 // one of -1, 0, +1
	mag  magnitude.Magnitude
}

// New returns the integer zero, equivalent to the zero value of BigInt.
func New() *BigInt {
	return &BigInt{}
}

// NewFromInt64 returns the BigInt equal to x.
func NewFromInt64(x int64) *BigInt {
	z := &BigInt{}
	z.SetInt64(x)
	return z
}

// SetInt64 sets z to x and returns z.
func (z *BigInt) SetInt64(x int64) *BigInt {
	if x == 0 {
		z.sign = 0
		z.mag = nil
		return z
	}
	sign := int8(1)
	ux := uint64(x)
	if x < 0 {
		sign = -1
		ux = uint64(-x)
	}
	z.sign = sign
	z.mag = magnitude.FromUint64(ux)
	return z
}

// Set sets z to a copy of x and returns z. Self-assignment (z == x) is
// a no-op, matching the source's guarded operator=.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	z.sign = x.sign
	z.mag = x.mag.Clone()
	return z
}

// Clone returns an independent copy of z.
func (z *BigInt) Clone() *BigInt {
	return &BigInt{sign: z.sign, mag: z.mag.Clone()}
}

// Sign returns -1, 0, or +1 depending on whether z is negative, zero,
// or positive.
func (z *BigInt) Sign() int {
	return int(z.sign)
}

// IsZero reports whether z is the integer zero.
func (z *BigInt) IsZero() bool {
	return z.sign == 0
}

// Plus returns a copy of z (the unary + operator).
func (z *BigInt) Plus() *BigInt {
	return z.Clone()
}

// Neg sets z to -x and returns z. Negating zero leaves it zero.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	mag := x.mag.Clone()
	sign := -x.sign
	z.sign, z.mag = sign, mag
	return z
}

// Negated returns -z as a new value, leaving z unchanged.
func (z *BigInt) Negated() *BigInt {
	return new(BigInt).Neg(z)
}

func (z *BigInt) setNormalized(sign int8, mag magnitude.Magnitude) {
	if mag.IsZero() {
		z.sign = 0
		z.mag = nil
		return
	}
	z.sign = sign
	z.mag = mag
}
