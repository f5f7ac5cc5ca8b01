//go:build !linux && !tinygo

package platform

import "statuspanel-go/errcode"

// GPIOLED is only available on Linux hosts.
type GPIOLED struct{}

func NewGPIOLED(chip string, offset int) (*GPIOLED, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "led.request", Msg: chip}
}

func (*GPIOLED) High()        {}
func (*GPIOLED) Low()         {}
func (*GPIOLED) Close() error { return nil }
