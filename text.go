package bigint

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-bigint/internal/magnitude"
)

// NewFromString parses s as a decimal integer and returns the result.
// Malformed input (anything other than an optional leading sign
// followed by one or more decimal digits) produces zero, matching the
// source's permissive parser; use ParseStrict for a validating
// alternative.
func NewFromString(s string) *BigInt {
	z := &BigInt{}
	z.SetString(s)
	return z
}

// SetString parses s as a decimal integer, sets z to the result, and
// returns z. Malformed input sets z to zero rather than reporting an
// error.
func (z *BigInt) SetString(s string) *BigInt {
	sign, mag, ok := parseDecimal(s)
	if !ok {
		z.sign, z.mag = 0, nil
		return z
	}
	z.setNormalized(sign, mag)
	return z
}

// ParseStrict parses s as a decimal integer, returning
// ErrMalformedDecimal if s is not an optional sign followed by one or
// more decimal digits.
func ParseStrict(s string) (*BigInt, error) {
	sign, mag, ok := parseDecimal(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDecimal, s)
	}
	z := &BigInt{}
	z.setNormalized(sign, mag)
	return z, nil
}

// Read parses s in place, returning ErrMalformedDecimal on invalid
// input. Unlike SetString/NewFromString, Read validates its input
// rather than silently zeroing it, so in-place parsing and
// construction can follow different policies as spec.md's open
// question allows.
func (z *BigInt) Read(s string) error {
	v, err := ParseStrict(s)
	if err != nil {
		return err
	}
	z.Set(v)
	return nil
}

// parseDecimal implements the grammar from spec.md §4.6: an optional
// leading sign, then decimal digits with leading zeros stripped. ok is
// false for anything else (empty input, a bare sign, a non-digit
// character).
func parseDecimal(s string) (sign int8, mag magnitude.Magnitude, ok bool) {
	sign = 1
	pos := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		pos = 1
	}
	digits := s[pos:]
	if digits == "" {
		return 0, nil, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, nil, false
		}
	}

	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	digits = digits[i:]
	if digits == "0" {
		return 0, nil, true
	}

	var limbs []uint32
	for end := len(digits); end > 0; end -= magnitude.BaseDigits {
		start := end - magnitude.BaseDigits
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(digits[start:end], 10, 32)
		if err != nil {
			return 0, nil, false
		}
		limbs = append(limbs, uint32(v))
	}
	return sign, magnitude.FromLimbs(limbs), true
}

// String returns the decimal representation of z: "0" for zero, a
// leading "-" for negative values, the most significant limb without
// padding, then each subsequent limb zero-padded to BaseDigits
// characters. No thousands separators, no exponential form.
func (z *BigInt) String() string {
	if z.sign == 0 {
		return "0"
	}
	var b strings.Builder
	if z.sign < 0 {
		b.WriteByte('-')
	}
	n := len(z.mag)
	fmt.Fprintf(&b, "%d", z.mag[n-1])
	for i := n - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%0*d", magnitude.BaseDigits, z.mag[i])
	}
	return b.String()
}

// ReadFrom consumes one whitespace-delimited decimal token from r and
// sets z to its value, implementing the "read-stream" operation.
// Malformed tokens are treated permissively, matching SetString. r is
// read through a buffered scanner, so bytes after the token may also be
// consumed from r; the returned count is the length of the token.
func (z *BigInt) ReadFrom(r io.Reader) (int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	tok := scanner.Text()
	z.SetString(tok)
	return int64(len(tok)), nil
}

// WriteTo writes the decimal representation of z to w, implementing
// the "write-stream" operation.
func (z *BigInt) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, z.String())
	return int64(n), err
}

// Print writes the decimal representation of z to standard output,
// with no trailing newline.
func (z *BigInt) Print() {
	z.WriteTo(os.Stdout)
}

// Scan implements fmt.Scanner so fmt.Fscan(r, z) parses one decimal
// token into z.
func (z *BigInt) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, func(r rune) bool {
		return r == '+' || r == '-' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return fmt.Errorf("%w: empty token", ErrMalformedDecimal)
	}
	return z.Read(string(tok))
}

// Add returns x+y, the free-function form of (*BigInt).Add, matching
// the source's free "add" function.
func Add(x, y *BigInt) *BigInt { return x.Add(y) }

// Minus returns x-y, the free-function form of (*BigInt).Sub, matching
// the source's free "minus" function.
func Minus(x, y *BigInt) *BigInt { return x.Sub(y) }
