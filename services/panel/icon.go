package panel

import "statuspanel-go/errcode"

// IconBitmap is a monochrome image: row-major, MSB-first, one bit per pixel,
// eight pixels per byte. A set bit is foreground.
type IconBitmap struct {
	Width  int16
	Height int16
	Pixels []byte
}

// NewIcon validates the packing; len(pix)*8 must equal w*h.
func NewIcon(w, h int16, pix []byte) (IconBitmap, error) {
	if w <= 0 || h <= 0 || len(pix)*8 != int(w)*int(h) {
		return IconBitmap{}, &errcode.E{C: errcode.InvalidIcon, Op: "panel.icon"}
	}
	return IconBitmap{Width: w, Height: h, Pixels: pix}, nil
}

// MustIcon is NewIcon for static icon tables.
func MustIcon(w, h int16, pix []byte) IconBitmap {
	ic, err := NewIcon(w, h, pix)
	if err != nil {
		panic(err)
	}
	return ic
}

// At reports whether the pixel at (x, y) is foreground. Bits missing from a
// short Pixels slice (a literal that skipped NewIcon) read as background.
func (ic IconBitmap) At(x, y int16) bool {
	if x < 0 || y < 0 || x >= ic.Width || y >= ic.Height {
		return false
	}
	bit := int(y)*int(ic.Width) + int(x)
	if bit/8 >= len(ic.Pixels) {
		return false
	}
	return ic.Pixels[bit/8]&(0x80>>(bit%8)) != 0
}

// Placement puts an icon at a fixed position.
type Placement struct {
	Icon IconBitmap
	At   Point
}
