package sensors

import (
	"statuspanel-go/drivers/aht20"
	"statuspanel-go/errcode"
)

// AHT20 adapts the I2C AHT20 driver to Driver.
type AHT20 struct {
	dev *aht20.Device
}

func NewAHT20(dev *aht20.Device) *AHT20 { return &AHT20{dev: dev} }

func (a *AHT20) Read() (float32, float32, error) {
	s, err := a.dev.Read()
	if err != nil {
		return 0, 0, errcode.Wrap("aht20.read", err)
	}
	return s.Celsius(), s.RelHumidity(), nil
}
