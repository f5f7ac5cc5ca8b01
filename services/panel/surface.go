package panel

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"statuspanel-go/errcode"
	"statuspanel-go/types"
)

// Surface is the drawing contract the scheduler renders through. It writes
// into the display's own frame buffer; Commit pushes it to the panel.
type Surface interface {
	ClearRegion(r types.Region)
	DrawText(x, y int16, text string)
	BlitIcon(ic IconBitmap, x, y int16)
	SetPixel(x, y int16, on bool)
	Commit() error
}

var (
	foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	background = color.RGBA{A: 255}
)

// optional displayer capabilities, feature-detected
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

type sleeper interface {
	Sleep(sleepEnabled bool) error
}

// DisplaySurface implements Surface over a tinygo display driver.
type DisplaySurface struct {
	d      drivers.Displayer
	font   tinyfont.Fonter
	ascent int16
	woken  bool
}

// NewSurface draws text with font; ascent is the distance from the top of a
// text cell to the font baseline.
func NewSurface(d drivers.Displayer, font tinyfont.Fonter, ascent int16) *DisplaySurface {
	return &DisplaySurface{d: d, font: font, ascent: ascent}
}

// Wake takes the panel out of sleep once. Displayers without a Sleep method
// are assumed awake after Configure.
func (s *DisplaySurface) Wake() error {
	if s.woken {
		return nil
	}
	if sl, ok := s.d.(sleeper); ok {
		if err := sl.Sleep(false); err != nil {
			return &errcode.E{C: errcode.DisplayFault, Op: "panel.wake", Err: err}
		}
	}
	s.woken = true
	return nil
}

func (s *DisplaySurface) ClearRegion(r types.Region) {
	w, h := s.d.Size()
	r = r.Clip(w, h)
	if r.Empty() {
		return
	}
	if f, ok := s.d.(rectFiller); ok {
		if f.FillRectangle(r.X, r.Y, r.W, r.H, background) == nil {
			return
		}
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.d.SetPixel(x, y, background)
		}
	}
}

// DrawText draws text with its cell's top-left at (x, y). Only glyph pixels
// are written; clear the region first.
func (s *DisplaySurface) DrawText(x, y int16, text string) {
	if s.font == nil || text == "" {
		return
	}
	tinyfont.WriteLine(s.d, s.font, x, y+s.ascent, text, foreground)
}

// BlitIcon copies every icon pixel, background included, like a framebuf blit.
func (s *DisplaySurface) BlitIcon(ic IconBitmap, x, y int16) {
	for iy := int16(0); iy < ic.Height; iy++ {
		for ix := int16(0); ix < ic.Width; ix++ {
			c := background
			if ic.At(ix, iy) {
				c = foreground
			}
			s.d.SetPixel(x+ix, y+iy, c)
		}
	}
}

func (s *DisplaySurface) SetPixel(x, y int16, on bool) {
	c := background
	if on {
		c = foreground
	}
	s.d.SetPixel(x, y, c)
}

func (s *DisplaySurface) Commit() error {
	if err := s.d.Display(); err != nil {
		return &errcode.E{C: errcode.DisplayFault, Op: "panel.commit", Err: err}
	}
	return nil
}
