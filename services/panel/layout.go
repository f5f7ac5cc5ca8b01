package panel

import (
	"time"

	"statuspanel-go/types"
)

// Point is a pixel position, origin top-left.
type Point struct{ X, Y int16 }

// Layout is the fixed placement of everything drawn on the panel.
type Layout struct {
	Width, Height int16

	// Environmental block: cleared as one region, two text lines.
	EnvRegion   types.Region
	EnvTempAt   Point
	HumidityAt  Point
	OnboardArea types.Region
	OnboardAt   Point

	// Activity track: one lit pixel walking along row TrackY.
	TrackY     int16
	TrackWidth int16

	Icons []Placement
}

// DefaultLayout is the 128x64 SH1106 arrangement.
func DefaultLayout() Layout {
	return Layout{
		Width:  128,
		Height: 64,

		EnvRegion:   types.Region{X: 40, Y: 0, W: 128 - 40, H: 40},
		EnvTempAt:   Point{40, 10},
		HumidityAt:  Point{40, 20},
		OnboardArea: types.Region{X: 22, Y: 43, W: 128 - 20, H: 13},
		OnboardAt:   Point{22, 48},

		TrackY:     60,
		TrackWidth: 128,

		Icons: []Placement{
			{Icon: HumidityIcon, At: Point{4, 4}},
			{Icon: ChipIcon, At: Point{2, 43}},
		},
	}
}

// Config is the scheduler's compile-time configuration.
type Config struct {
	// SampleInterval is the number of frames between sensor samples.
	SampleInterval uint32
	// FramePeriod is the sleep between frames.
	FramePeriod time.Duration
	Layout      Layout
}

func DefaultConfig() Config {
	return Config{
		SampleInterval: 5,
		FramePeriod:    200 * time.Millisecond,
		Layout:         DefaultLayout(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SampleInterval == 0 {
		c.SampleInterval = d.SampleInterval
	}
	if c.FramePeriod <= 0 {
		c.FramePeriod = d.FramePeriod
	}
	if c.Layout.Width == 0 || c.Layout.Height == 0 {
		c.Layout = d.Layout
	}
	if c.Layout.TrackWidth == 0 {
		c.Layout.TrackWidth = c.Layout.Width
	}
	return c
}
