package magnitude

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMulFFTKnownProducts(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"both zero", "0", "0", "0"},
		{"one zero", "123456789123456789", "0", "0"},
		{"symmetric squares", "999999999999999999", "999999999999999999", "999999999999999998000000000000000001"},
		{"many limbs, no special structure", "314159265358979323846264338327950288", "271828182845904523536028747135266249", "85397342226735670654635508695465744592556887448308321663017903316229712"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := decimalToMagnitude(t, tt.a)
			b := decimalToMagnitude(t, tt.b)
			want := decimalToMagnitude(t, tt.want)
			got := mulFFT(a, b)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mulFFT(%s, %s) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestMulFFTAgreesWithSchoolbookAcrossSizeBoundary(t *testing.T) {
	// Exercise lengths straddling schoolbookMaxLen / schoolbookMaxSum so
	// the dispatch boundary in Mul never silently changes the answer.
	sizes := []struct{ aLen, bLen int }{
		{schoolbookMaxLen - 1, schoolbookMaxLen - 1},
		{schoolbookMaxLen, schoolbookMaxLen},
		{schoolbookMaxLen + 1, schoolbookMaxLen + 1},
		{1, schoolbookMaxSum},
		{schoolbookMaxSum / 2, schoolbookMaxSum/2 + 2},
	}
	for _, sz := range sizes {
		a := sequentialMagnitude(sz.aLen, 7)
		b := sequentialMagnitude(sz.bLen, 13)
		want := mulSchoolbook(a, b)
		got := mulFFT(a, b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("lens (%d, %d): mulFFT vs mulSchoolbook mismatch (-want +got):\n%s", sz.aLen, sz.bLen, diff)
		}
	}
}

func TestFFTForwardInverseRoundTrip(t *testing.T) {
	n := 16
	a := make([]complex128, n)
	for i := range a {
		a[i] = complex(float64(i+1), 0)
	}
	original := make([]complex128, n)
	copy(original, a)

	fft(a, false)
	fft(a, true)

	for i := range a {
		diff := real(a[i]) - real(original[i])
		if diff < -1e-6 || diff > 1e-6 {
			t.Errorf("index %d: forward+inverse FFT round trip = %v, want %v", i, a[i], original[i])
		}
	}
}

// sequentialMagnitude builds a deterministic, non-trivial magnitude of
// exactly n limbs (no external randomness needed for a boundary sweep).
func sequentialMagnitude(n int, seed uint32) Magnitude {
	if n <= 0 {
		return nil
	}
	limbs := make([]uint32, n)
	v := seed
	for i := range limbs {
		v = (v*1103515245 + 12345) % Base
		limbs[i] = v
	}
	return FromLimbs(limbs)
}
