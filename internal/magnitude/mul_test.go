package magnitude

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opd-ai/go-bigint/internal/entropy"
)

func TestMulSchoolbookKnownProducts(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"scenario from spec: FFT-range values, small base", "123456789", "987654321", "121932631112635269"},
		{"single limb", "7", "6", "42"},
		{"multiply by zero", "123456789012345", "0", "0"},
		{"multiply by one", "123456789012345", "1", "123456789012345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := decimalToMagnitude(t, tt.a)
			b := decimalToMagnitude(t, tt.b)
			want := decimalToMagnitude(t, tt.want)
			got := mulSchoolbook(a, b)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mulSchoolbook(%s, %s) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

// TestMulAlgorithmAgreement forces both the schoolbook and FFT paths
// on the same random operands and checks they agree, per spec.md §8's
// "Algorithm agreement" property.
func TestMulAlgorithmAgreement(t *testing.T) {
	gen := entropy.NewGenerator([]byte("magnitude-mul-algorithm-agreement"))
	for i := 0; i < 200; i++ {
		aLen := gen.Intn(300) + 1
		bLen := gen.Intn(300) + 1
		a := gen.Magnitude(aLen)
		b := gen.Magnitude(bLen)

		schoolbook := mulSchoolbook(a, b)
		fft := mulFFT(a, b)
		if diff := cmp.Diff(schoolbook, fft); diff != "" {
			t.Fatalf("iteration %d: mulSchoolbook and mulFFT disagree for lens (%d, %d) (-schoolbook +fft):\n%s", i, aLen, bLen, diff)
		}
	}
}

func TestMulDispatchMatchesBigForRandomOperands(t *testing.T) {
	gen := entropy.NewGenerator([]byte("magnitude-mul-dispatch"))
	for i := 0; i < 100; i++ {
		aLen := gen.Intn(20) + 1
		bLen := gen.Intn(20) + 1
		a := gen.Magnitude(aLen)
		b := gen.Magnitude(bLen)

		got := Mul(a, b)
		want := bigMul(t, a, b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("iteration %d: Mul mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// decimalToMagnitude and bigMul cross-check our kernel against
// math/big, which is part of the standard library and not a stand-in
// for any domain dependency — used here purely as a trusted oracle.
func decimalToMagnitude(t *testing.T, s string) Magnitude {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid decimal literal %q in test table", s)
	}
	return bigIntToMagnitude(v)
}

func bigMul(t *testing.T, a, b Magnitude) Magnitude {
	t.Helper()
	return bigIntToMagnitude(new(big.Int).Mul(magnitudeToBigInt(a), magnitudeToBigInt(b)))
}

func bigIntToMagnitude(v *big.Int) Magnitude {
	s := v.String()
	if s == "0" {
		return nil
	}
	var limbs []uint32
	for end := len(s); end > 0; end -= BaseDigits {
		start := end - BaseDigits
		if start < 0 {
			start = 0
		}
		n := 0
		for _, c := range s[start:end] {
			n = n*10 + int(c-'0')
		}
		limbs = append(limbs, uint32(n))
	}
	return FromLimbs(limbs)
}

func magnitudeToBigInt(m Magnitude) *big.Int {
	result := new(big.Int)
	base := big.NewInt(Base)
	for i := len(m) - 1; i >= 0; i-- {
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(m[i])))
	}
	return result
}
