package panel

import (
	"testing"

	"statuspanel-go/errcode"
)

func TestNewIconValidatesPacking(t *testing.T) {
	type C struct {
		w, h int16
		n    int
		ok   bool
	}
	for _, c := range []C{
		{32, 32, 128, true},
		{16, 16, 32, true},
		{8, 1, 1, true},
		{32, 32, 127, false},
		{16, 16, 33, false},
		{0, 8, 0, false},
	} {
		_, err := NewIcon(c.w, c.h, make([]byte, c.n))
		if (err == nil) != c.ok {
			t.Fatalf("NewIcon(%d,%d,len %d) err = %v", c.w, c.h, c.n, err)
		}
		if err != nil && errcode.Of(err) != errcode.InvalidIcon {
			t.Fatalf("code = %q", errcode.Of(err))
		}
	}
}

func TestBuiltinIcons(t *testing.T) {
	for name, ic := range map[string]IconBitmap{"humidity": HumidityIcon, "chip": ChipIcon} {
		if len(ic.Pixels)*8 != int(ic.Width)*int(ic.Height) {
			t.Fatalf("%s: %d bytes for %dx%d", name, len(ic.Pixels), ic.Width, ic.Height)
		}
	}
	if HumidityIcon.Width != 32 || ChipIcon.Width != 16 {
		t.Fatalf("unexpected icon sizes")
	}
}

func TestIconAtMSBFirst(t *testing.T) {
	// Row 1 of the chip is 0b00010010 0b01001000.
	want := map[int16]bool{3: true, 6: true, 9: true, 12: true}
	for x := int16(0); x < 16; x++ {
		if got := ChipIcon.At(x, 1); got != want[x] {
			t.Fatalf("ChipIcon.At(%d,1) = %v", x, got)
		}
	}
	if ChipIcon.At(-1, 0) || ChipIcon.At(16, 0) || ChipIcon.At(0, 16) {
		t.Fatalf("out of range At should be false")
	}
}

func TestMustIconPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustIcon did not panic on bad length")
		}
	}()
	MustIcon(8, 8, []byte{0})
}

func TestAtShortLiteral(t *testing.T) {
	// Built without NewIcon: 16x2 needs 4 bytes, only 1 given.
	ic := IconBitmap{Width: 16, Height: 2, Pixels: []byte{0xFF}}
	if !ic.At(7, 0) {
		t.Fatalf("At(7,0) should read the first byte")
	}
	if ic.At(8, 0) || ic.At(15, 1) {
		t.Fatalf("pixels past the slice must read as background")
	}

	s, buf := newTestSurface()
	s.BlitIcon(ic, 0, 0)
	if !buf.Pixel(0, 0) || buf.Pixel(8, 0) {
		t.Fatalf("blit of a short icon drew the wrong pixels")
	}
}
