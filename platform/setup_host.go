//go:build !tinygo

package platform

import (
	"io"
	"math/rand"

	"tinygo.org/x/tinyfont/proggy"

	"statuspanel-go/drivers/monobuf"
	"statuspanel-go/drivers/thermal"
	"statuspanel-go/platform/boards"
	"statuspanel-go/services/panel"
	"statuspanel-go/services/sensors"
	"statuspanel-go/x/logx"
	"statuspanel-go/x/mathx"
	"statuspanel-go/x/strconvx"
	"statuspanel-go/x/timex"
)

// HostOptions selects the simulated hardware.
type HostOptions struct {
	Seed       int64
	FaultEvery int    // every n-th env read fails; 0 disables
	DHTPin     string // non-empty: read a real DHT22 via host GPIO

	// LEDLine >= 0 mirrors the indicator onto that line of LEDChip.
	LEDChip string
	LEDLine int
}

// Host is a SystemContext backed by an in-memory framebuffer.
type Host struct {
	Sys   panel.SystemContext
	Frame *monobuf.Buffer
	Env   *sensors.Environmental
	LED   *SimLED

	closers []func() error
}

// SetupHost builds the simulated panel for w.
func SetupHost(w boards.Wiring, opts HostOptions, diag io.Writer) (*Host, error) {
	h := &Host{
		Frame: monobuf.New(w.DisplayW, w.DisplayH),
		LED:   &SimLED{},
	}
	h.Sys.Display = panel.NewSurface(h.Frame, &proggy.TinySZ8pt7b, FontAscent)

	var drv sensors.Driver
	if opts.DHTPin != "" {
		d, err := sensors.NewHostDHT(opts.DHTPin)
		if err != nil {
			return nil, err
		}
		drv = d
		logx.Line(diag, "setup", "env host dht22", opts.DHTPin)
	} else {
		drv = sensors.NewSim(opts.Seed, opts.FaultEvery)
		logx.Line(diag, "setup", "env simulated")
	}
	var ind sensors.Indicator = h.LED
	if opts.LEDLine >= 0 && opts.LEDChip != "" {
		led, err := NewGPIOLED(opts.LEDChip, opts.LEDLine)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, led.Close)
		ind = bothLEDs{h.LED, led}
		logx.Line(diag, "setup", "indicator", opts.LEDChip, strconvx.Itoa(opts.LEDLine))
	}
	h.Env = sensors.New(drv, ind)
	h.Sys.Env = h.Env

	h.Sys.Onboard = thermal.New(newSimADC(opts.Seed), thermal.DefaultCalibration())
	h.Sys.Clock = timex.Real{}
	h.Sys.Diag = diag
	return h, nil
}

// Close releases host GPIO lines.
func (h *Host) Close() error {
	var first error
	for _, c := range h.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	h.closers = nil
	return first
}

type bothLEDs [2]sensors.Indicator

func (b bothLEDs) High() { b[0].High(); b[1].High() }
func (b bothLEDs) Low()  { b[0].Low(); b[1].Low() }

// SimLED records the acquisition indicator.
type SimLED struct {
	On     bool
	Pulses int
}

func (l *SimLED) High() {
	if !l.On {
		l.Pulses++
	}
	l.On = true
}

func (l *SimLED) Low() { l.On = false }

// simADC drifts around the code for ~27 °C on the default calibration.
type simADC struct {
	rng  *rand.Rand
	code int32
}

const (
	simADCCenter = 14020
	simADCSpread = 200
)

func newSimADC(seed int64) *simADC {
	return &simADC{rng: rand.New(rand.NewSource(seed ^ 0x5eed)), code: simADCCenter}
}

func (a *simADC) Get() uint16 {
	a.code = mathx.Clamp(a.code+int32(a.rng.Intn(41)-20), simADCCenter-simADCSpread, simADCCenter+simADCSpread)
	return uint16(a.code)
}
