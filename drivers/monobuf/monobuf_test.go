package monobuf

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{}
)

func TestSetPixelPackingMSBFirst(t *testing.T) {
	b := New(16, 2)
	b.SetPixel(0, 0, white)
	b.SetPixel(9, 1, white)
	got := b.Staged(nil)
	want := []byte{0x80, 0x00, 0x00, 0x40}
	if !bytes.Equal(got, want) {
		t.Fatalf("staged = % x, want % x", got, want)
	}
	if !b.Pixel(0, 0) || !b.Pixel(9, 1) || b.Pixel(1, 0) {
		t.Fatalf("Pixel readback wrong")
	}
	b.SetPixel(0, 0, black)
	if b.Pixel(0, 0) {
		t.Fatalf("black did not clear the pixel")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	b := New(8, 8)
	b.SetPixel(-1, 0, white)
	b.SetPixel(8, 0, white)
	b.SetPixel(0, 8, white)
	if b.Count() != 0 {
		t.Fatalf("out of range writes lit %d pixels", b.Count())
	}
	if err := b.FillRectangle(6, 6, 10, 10, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if b.Count() != 4 {
		t.Fatalf("clipped fill lit %d pixels, want 4", b.Count())
	}
}

func TestDisplayPresents(t *testing.T) {
	b := New(8, 2)
	b.SetPixel(3, 1, white)
	if b.PixelAt(b.Snapshot(nil), 3, 1) {
		t.Fatalf("pixel visible before Display")
	}
	if err := b.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !b.PixelAt(b.Snapshot(nil), 3, 1) || b.Presents() != 1 {
		t.Fatalf("pixel not presented")
	}

	boom := errors.New("i2c nack")
	b.OnDisplay(func() error { return boom })
	if err := b.Display(); err != boom {
		t.Fatalf("Display err = %v, want %v", err, boom)
	}
}

func TestASCII(t *testing.T) {
	b := New(4, 2)
	b.SetPixel(0, 0, white)
	b.SetPixel(3, 1, white)
	_ = b.Display()
	if got, want := b.ASCII(1), "#...\n...#\n"; got != want {
		t.Fatalf("ASCII = %q, want %q", got, want)
	}
	if got := b.ASCII(2); strings.Count(got, "\n") != 1 {
		t.Fatalf("ASCII(2) rows = %q", got)
	}
}
