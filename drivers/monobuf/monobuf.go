// Package monobuf is an in-memory 1bpp frame buffer that satisfies
// drivers.Displayer. It stands in for the SH1106 on the host and in tests.
package monobuf

import (
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Buffer)(nil)

// Buffer stores pixels row-major, MSB-first, one bit per pixel (MONO_HLSB).
// Pixels written after the last Display are staged; Snapshot returns the
// last presented frame.
type Buffer struct {
	mu        sync.Mutex
	width     int16
	height    int16
	stride    int
	pix       []byte
	shown     []byte
	presents  int
	displayFn func() error
}

// New returns a blank width x height buffer.
func New(width, height int16) *Buffer {
	stride := (int(width) + 7) / 8
	return &Buffer{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, stride*int(height)),
		shown:  make([]byte, stride*int(height)),
	}
}

// OnDisplay sets a hook run after each Display; its error is returned.
func (b *Buffer) OnDisplay(fn func() error) { b.displayFn = fn }

func (b *Buffer) Size() (x, y int16) { return b.width, b.height }

// SetPixel lights the pixel for any non-black colour. Out of range is ignored.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	b.mu.Lock()
	b.set(x, y, c.R|c.G|c.B != 0)
	b.mu.Unlock()
}

// Display presents the staged frame.
func (b *Buffer) Display() error {
	b.mu.Lock()
	copy(b.shown, b.pix)
	b.presents++
	fn := b.displayFn
	b.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return nil
}

// FillRectangle sets every pixel of the rectangle, clipped to the buffer.
func (b *Buffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	on := c.R|c.G|c.B != 0
	b.mu.Lock()
	defer b.mu.Unlock()
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			b.set(px, py, on)
		}
	}
	return nil
}

// Pixel reports the staged pixel at (x, y).
func (b *Buffer) Pixel(x, y int16) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.get(b.pix, x, y)
}

// Presents returns how many times Display was called.
func (b *Buffer) Presents() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presents
}

// Snapshot copies the last presented frame into dst (grown as needed).
func (b *Buffer) Snapshot(dst []byte) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(dst[:0], b.shown...)
}

// Staged copies the frame as currently drawn, presented or not.
func (b *Buffer) Staged(dst []byte) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(dst[:0], b.pix...)
}

// Count returns the number of lit staged pixels.
func (b *Buffer) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, v := range b.pix {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}

// Clear blanks the staged frame.
func (b *Buffer) Clear() {
	b.mu.Lock()
	clear(b.pix)
	b.mu.Unlock()
}

// ASCII renders the presented frame with '#' for lit and '.' for dark,
// sampling every step-th pixel in both axes.
func (b *Buffer) ASCII(step int16) string {
	if step < 1 {
		step = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var sb strings.Builder
	for y := int16(0); y < b.height; y += step {
		for x := int16(0); x < b.width; x += step {
			if b.get(b.shown, x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PixelAt decodes (x, y) from a Snapshot/Staged copy of this buffer.
func (b *Buffer) PixelAt(frame []byte, x, y int16) bool { return b.get(frame, x, y) }

func (b *Buffer) set(x, y int16, on bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := int(y)*b.stride + int(x)/8
	mask := byte(0x80) >> (uint(x) % 8)
	if on {
		b.pix[i] |= mask
	} else {
		b.pix[i] &^= mask
	}
}

func (b *Buffer) get(frame []byte, x, y int16) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	i := int(y)*b.stride + int(x)/8
	if i >= len(frame) {
		return false
	}
	return frame[i]&(byte(0x80)>>(uint(x)%8)) != 0
}
