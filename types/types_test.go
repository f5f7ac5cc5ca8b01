package types

import "testing"

func TestReadingPairedPresence(t *testing.T) {
	r := NewReading(23.4, 55)
	if !r.Valid() {
		t.Fatalf("NewReading should be valid")
	}
	if v, ok := r.Temperature(); !ok || v != 23.4 {
		t.Fatalf("Temperature() = %v,%v", v, ok)
	}
	if v, ok := r.Humidity(); !ok || v != 55 {
		t.Fatalf("Humidity() = %v,%v", v, ok)
	}

	n := NoReading()
	if n.Valid() {
		t.Fatalf("NoReading should be invalid")
	}
	if _, ok := n.Temperature(); ok {
		t.Fatalf("absent reading reports temperature")
	}
	if _, ok := n.Humidity(); ok {
		t.Fatalf("absent reading reports humidity")
	}
	if n != (Reading{}) {
		t.Fatalf("zero value must be the absent reading")
	}
}

func TestReadingZeroIsNotAbsent(t *testing.T) {
	r := NewReading(0, 0)
	if !r.Valid() {
		t.Fatalf("0°C/0%% is a real reading")
	}
}

func TestReadingDeciC(t *testing.T) {
	for _, c := range []struct {
		in   float32
		want int16
	}{
		{23.44, 234},
		{23.45, 235},
		{-4.26, -43},
		{0, 0},
	} {
		got, ok := NewReading(c.in, 50).DeciC()
		if !ok || got != c.want {
			t.Fatalf("DeciC(%v) = %d,%v want %d", c.in, got, ok, c.want)
		}
	}
	if _, ok := NoReading().DeciC(); ok {
		t.Fatalf("DeciC on absent reading reported ok")
	}
}

func TestRegionClipContains(t *testing.T) {
	r := Region{X: 40, Y: 0, W: 100, H: 40}
	c := r.Clip(128, 64)
	if c != (Region{X: 40, Y: 0, W: 88, H: 40}) {
		t.Fatalf("Clip = %+v", c)
	}
	if !c.Contains(40, 0) || !c.Contains(127, 39) || c.Contains(128, 0) || c.Contains(40, 40) {
		t.Fatalf("Contains boundaries wrong for %+v", c)
	}
	if !(Region{X: 200, Y: 0, W: 5, H: 5}).Clip(128, 64).Empty() {
		t.Fatalf("off-screen region should clip to empty")
	}
}
