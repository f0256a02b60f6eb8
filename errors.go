package bigint

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-bigint/internal/magnitude"
)

// ErrDivisionByZero is returned by Div, Mod, QuoRem, DivAssign, and
// ModAssign when the divisor is zero. It is the kernel-level sentinel
// from internal/magnitude itself, so callers can test for it with
// errors.Is regardless of which layer detected the zero divisor.
var ErrDivisionByZero = magnitude.ErrDivisionByZero

// ErrMalformedDecimal is returned, wrapped, by ParseStrict and by the
// strict Read and Scan when their input is not [+-]?[0-9]+ after
// optional leading-zero stripping. SetString never returns this error;
// it silently treats malformed input as zero (see SPEC_FULL.md §9 for
// why both policies exist).
var ErrMalformedDecimal = errors.New("bigint: malformed decimal string")

// ErrOverflowInternal is reserved for the FFT multiplication path
// losing precision at extreme input sizes. The public Mul path always
// routes inputs beyond the documented safe FFT bound through block
// schoolbook multiplication instead, so this error is never returned
// by any exported bigint function; it exists so the error taxonomy in
// the package's design notes has a concrete, testable value.
var ErrOverflowInternal = errors.New("bigint: internal overflow in multiplication")

func wrapf(format string, args ...any) error {
	return fmt.Errorf("bigint: "+format, args...)
}
