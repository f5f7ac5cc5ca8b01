package sensors

import "statuspanel-go/errcode"

// DHTDevice is the subset of tinygo.org/x/drivers/dht.Device used here.
// Measurements are tenths of °C and tenths of %RH.
type DHTDevice interface {
	ReadMeasurements() error
	Measurements() (temperature int16, humidity uint16, err error)
}

// DHT adapts a DHT11/DHT22 driver to Driver.
type DHT struct {
	dev DHTDevice
}

func NewDHT(dev DHTDevice) *DHT { return &DHT{dev: dev} }

// Read runs one timing-critical exchange and converts the fixed-point result.
// A device that refuses to re-read inside its update window still holds the
// previous measurement, which is returned instead of a fault.
func (d *DHT) Read() (float32, float32, error) {
	if err := d.dev.ReadMeasurements(); err != nil && errcode.MapDriverErr(err) != errcode.RateLimited {
		return 0, 0, errcode.Wrap("dht.read", err)
	}
	t, h, err := d.dev.Measurements()
	if err != nil {
		return 0, 0, errcode.Wrap("dht.measurements", err)
	}
	if h > 1000 {
		return 0, 0, &errcode.E{C: errcode.SensorFault, Op: "dht.measurements", Msg: "humidity out of range"}
	}
	return float32(t) / 10, float32(h) / 10, nil
}
