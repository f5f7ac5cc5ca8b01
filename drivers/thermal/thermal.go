// Package thermal converts the RP2040 on-die temperature sensor's ADC code
// into degrees Celsius using a fixed linear calibration.
//
// The conversion is pure arithmetic over the full uint16 range and never
// fails; Sensor adds the ADC sampling on top.
package thermal

// Calibration holds the linear model of the on-die sensor.
type Calibration struct {
	// RefVolts is the ADC reference voltage (V).
	RefVolts float32
	// FullScale is the ADC code that maps to RefVolts.
	FullScale float32
	// BaseC is the temperature (°C) at which the sensor reads VoltsAtBase.
	BaseC float32
	// VoltsAtBase is the sensor voltage (V) at BaseC.
	VoltsAtBase float32
	// VoltsPerDegree is the sensor slope magnitude (V/°C); voltage falls as
	// temperature rises.
	VoltsPerDegree float32
}

// DefaultCalibration returns the datasheet constants for the RP2040 sensor
// read through the 16-bit scaled ADC value.
func DefaultCalibration() Calibration {
	return Calibration{
		RefVolts:       3.3,
		FullScale:      65535,
		BaseC:          27.0,
		VoltsAtBase:    0.706,
		VoltsPerDegree: 0.001721,
	}
}

// Volts returns the sensor voltage for a raw ADC code.
func (c Calibration) Volts(raw uint16) float32 {
	c = c.orDefault()
	return (c.RefVolts / c.FullScale) * float32(raw)
}

// Celsius returns the temperature for a raw ADC code.
func (c Calibration) Celsius(raw uint16) float32 {
	c = c.orDefault()
	return c.BaseC - (c.Volts(raw)-c.VoltsAtBase)/c.VoltsPerDegree
}

// orDefault guards the two divisors; any calibration with a zero divisor is
// treated as unset.
func (c Calibration) orDefault() Calibration {
	if c.FullScale == 0 || c.VoltsPerDegree == 0 {
		return DefaultCalibration()
	}
	return c
}

// ADC is a single analog channel. machine.ADC satisfies it.
type ADC interface {
	Get() uint16
}

// Sensor samples an ADC channel and applies a Calibration.
type Sensor struct {
	adc ADC
	cal Calibration
}

// New returns a Sensor. A zero Calibration selects DefaultCalibration.
func New(adc ADC, cal Calibration) *Sensor {
	return &Sensor{adc: adc, cal: cal.orDefault()}
}

// Read samples the channel once and returns °C.
func (s *Sensor) Read() float32 {
	return s.cal.Celsius(s.adc.Get())
}

// Raw samples the channel once and returns the unconverted code.
func (s *Sensor) Raw() uint16 { return s.adc.Get() }
