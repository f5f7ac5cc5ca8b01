//go:build !tinygo && cgo

package main

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"statuspanel-go/drivers/monobuf"
	"statuspanel-go/services/panel"
	"statuspanel-go/x/timex"
)

// runWindow shows the panel in a desktop window, one Step per tick. It
// blocks until the window closes, ctx is cancelled or frames have run.
func runWindow(ctx context.Context, s *panel.Scheduler, fb *monobuf.Buffer, scale, frames int) error {
	if err := s.Prime(); err != nil {
		return err
	}
	w, h := fb.Size()
	g := &panelGame{ctx: ctx, s: s, fb: fb, w: int(w), h: int(h), frames: frames}
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("status panel")
	ebiten.SetWindowSize(g.w*scale, g.h*scale)
	ebiten.SetTPS(timex.HzFromPeriod(s.FramePeriod()))
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type panelGame struct {
	ctx    context.Context
	s      *panel.Scheduler
	fb     *monobuf.Buffer
	w, h   int
	frames int

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *panelGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.frames > 0 && g.s.Stats().Frames >= uint64(g.frames) {
		return ebiten.Termination
	}
	g.s.Step()
	return nil
}

// Draw paints the last presented frame: lit pixels in OLED blue-white.
func (g *panelGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
		g.fbImg = ebiten.NewImage(g.w, g.h)
	}
	g.scratch = g.fb.Snapshot(g.scratch)
	pix := g.img.Pix
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			j := (y*g.w + x) * 4
			if g.fb.PixelAt(g.scratch, int16(x), int16(y)) {
				pix[j], pix[j+1], pix[j+2] = 0xC8, 0xE6, 0xFF
			} else {
				pix[j], pix[j+1], pix[j+2] = 0, 0, 0
			}
			pix[j+3] = 0xFF
		}
	}
	g.fbImg.WritePixels(pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *panelGame) Layout(_, _ int) (int, int) { return g.w, g.h }
