package emblem

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{64, "64"},
		{0.7, "0.7"},
		{-0.0, "0"},
		{-1e-12, "0"},
		{0.1 + 0.2, "0.3"},
		{1.23456789012345, "1.2345678901"},
		{-38.4, "-38.4"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	for _, x := range []float64{1.0 / 3, 38.4 * 0.96126, -22.6274169979695} {
		r := Round(x)
		if Round(r) != r {
			t.Errorf("Round(Round(%v)) = %v, want %v", x, Round(r), r)
		}
		if !almostEqual(r, x, 0.5e-10+1e-15) {
			t.Errorf("Round(%v) = %v moved too far", x, r)
		}
	}
}
