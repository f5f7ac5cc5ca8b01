package panel

import (
	"statuspanel-go/errcode"
	"statuspanel-go/x/mathx"
)

// Animation is a reflecting walk over [0, width-1]: one step per Advance,
// reversing direction after landing on either end.
type Animation struct {
	width int16
	pos   int16
	dir   int16
}

// NewAnimation starts at position 1 moving right, so the first step does not
// reflect. Widths below 3 are raised to 3.
func NewAnimation(width int16) *Animation {
	return &Animation{width: max(width, 3), pos: 1, dir: 1}
}

// Advance moves one step and returns the new position.
func (a *Animation) Advance() int16 {
	a.pos += a.dir
	if a.pos == 0 || a.pos == a.width-1 {
		a.dir = -a.dir
	}
	return a.pos
}

func (a *Animation) Position() int16  { return a.pos }
func (a *Animation) Direction() int16 { return a.dir }
func (a *Animation) Width() int16     { return a.width }

// Seed restarts the walk from (pos, dir). The state must be one the walk can
// reach: in range, unit direction, and not pointing off either end.
func (a *Animation) Seed(pos, dir int16) error {
	switch {
	case dir != 1 && dir != -1,
		!mathx.Between(pos, 0, a.width-1),
		pos == 0 && dir == -1,
		pos == a.width-1 && dir == 1:
		return &errcode.E{C: errcode.InvalidParams, Op: "panel.anim.seed"}
	}
	a.pos, a.dir = pos, dir
	return nil
}
