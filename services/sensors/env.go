// Package sensors wraps the humidity/temperature bus drivers behind a
// fault-absorbing reader.
package sensors

import (
	"statuspanel-go/errcode"
	"statuspanel-go/types"
)

// Driver performs one complete bus transaction and returns °C and %RH.
// Any fault (timeout, checksum, contention) is reported as err.
type Driver interface {
	Read() (tempC, rh float32, err error)
}

// Indicator is an activity output. machine.Pin satisfies it.
type Indicator interface {
	High()
	Low()
}

// Stats counts sensor activity since boot.
type Stats struct {
	Reads  uint32
	Faults uint32
	Last   errcode.Code // code of the most recent read, OK on success
}

// Environmental turns driver faults into absent readings.
type Environmental struct {
	drv   Driver
	ind   Indicator
	stats Stats
}

// New returns an Environmental over drv. ind may be nil.
func New(drv Driver, ind Indicator) *Environmental {
	return &Environmental{drv: drv, ind: ind}
}

// Read performs one sample. The indicator is high for exactly the duration
// of the bus transaction. A fault yields types.NoReading(); it is never
// retried here.
func (e *Environmental) Read() types.Reading {
	e.stats.Reads++
	t, h, err := e.transact()
	if err != nil {
		e.stats.Faults++
		e.stats.Last = errcode.MapDriverErr(err)
		return types.NoReading()
	}
	e.stats.Last = errcode.OK
	return types.NewReading(t, h)
}

func (e *Environmental) transact() (t, h float32, err error) {
	if e.ind != nil {
		e.ind.High()
		defer e.ind.Low()
	}
	return e.drv.Read()
}

func (e *Environmental) Stats() Stats { return e.stats }
