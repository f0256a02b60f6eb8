package magnitude

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Magnitude
		want int
	}{
		{"equal zero", nil, nil, 0},
		{"equal nonzero", Magnitude{1, 2}, Magnitude{1, 2}, 0},
		{"shorter is less", Magnitude{5}, Magnitude{1, 2}, -1},
		{"longer is greater", Magnitude{1, 2}, Magnitude{5}, 1},
		{"same length, differ at top", Magnitude{9, 1}, Magnitude{9, 2}, -1},
		{"same length, differ at bottom", Magnitude{1, 9}, Magnitude{2, 9}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}
