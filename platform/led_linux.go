//go:build linux && !tinygo

package platform

import (
	"github.com/warthog618/go-gpiocdev"

	"statuspanel-go/errcode"
)

// GPIOLED drives a host GPIO line as the acquisition indicator.
type GPIOLED struct {
	line *gpiocdev.Line
}

// NewGPIOLED requests offset on chip (e.g. "gpiochip0") as an output, low.
func NewGPIOLED(chip string, offset int) (*GPIOLED, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "led.request", Msg: chip, Err: err}
	}
	return &GPIOLED{line: line}, nil
}

// Write errors are dropped; the indicator is best effort.
func (l *GPIOLED) High() { _ = l.line.SetValue(1) }
func (l *GPIOLED) Low()  { _ = l.line.SetValue(0) }

func (l *GPIOLED) Close() error { return l.line.Close() }
