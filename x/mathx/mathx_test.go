package mathx

import "testing"

func TestClamp(t *testing.T) {
	for _, c := range []struct{ v, lo, hi, want int16 }{
		{5, 0, 127, 5},
		{-1, 0, 127, 0},
		{200, 0, 127, 127},
		{5, 127, 0, 5}, // swapped bounds
		{-3, 127, 0, 0},
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(101.5, 0.0, 100.0); got != 100 {
		t.Fatalf("Clamp float = %v", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(0, 0, 127) || !Between(127, 127, 0) || Between(128, 0, 127) || Between(-1, 0, 127) {
		t.Fatalf("Between boundaries wrong")
	}
}

func TestRoundHalfAway(t *testing.T) {
	for _, c := range []struct {
		f    float32
		want int32
	}{
		{2.5, 3},
		{-2.5, -3},
		{2.49, 2},
		{-0.4, 0},
		{234.4, 234},
	} {
		if got := RoundHalfAway[int32](c.f); got != c.want {
			t.Fatalf("RoundHalfAway(%v) = %d, want %d", c.f, got, c.want)
		}
	}
}
