package types

import "statuspanel-go/x/mathx"

// ------------------------
// Temperature & humidity
// ------------------------

// Reading is one paired sample from the environmental sensor.
// Temperature and humidity are present together or not at all; the zero
// value is the absent reading.
type Reading struct {
	tempC float32 // °C
	rh    float32 // %RH
	ok    bool
}

// NewReading returns a present reading.
func NewReading(tempC, rh float32) Reading {
	return Reading{tempC: tempC, rh: rh, ok: true}
}

// NoReading returns the absent reading produced by a failed sample.
func NoReading() Reading { return Reading{} }

func (r Reading) Valid() bool { return r.ok }

// Temperature returns °C and whether the reading is present.
func (r Reading) Temperature() (float32, bool) { return r.tempC, r.ok }

// Humidity returns %RH and whether the reading is present.
func (r Reading) Humidity() (float32, bool) { return r.rh, r.ok }

// DeciC returns the temperature in tenths of °C (e.g. 231 => 23.1°C).
func (r Reading) DeciC() (int16, bool) {
	if !r.ok {
		return 0, false
	}
	return mathx.RoundHalfAway[int16](r.tempC * 10), true
}
