package aht20

import (
	"errors"
	"math"
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// Scripted AHT20-like fake.
type fakeI2C struct {
	calib      bool
	busyReads  int // data reads that still report busy after a trigger
	badCRC     bool
	txErr      error
	hraw, traw uint32
	triggers   int
}

func newFakeAHT20() *fakeI2C {
	// 25.0°C, 55.0 %RH
	return &fakeI2C{calib: true, hraw: 576_717, traw: 393_216}
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.txErr != nil {
		return f.txErr
	}
	if addr != Address {
		return errors.New("nack")
	}
	var status byte
	if f.calib {
		status |= statusCalibrated
	}

	switch {
	case len(w) == 1 && w[0] == cmdStatus && len(r) == 1:
		r[0] = status
	case len(w) == 3 && w[0] == cmdInitialize:
		f.calib = true
	case len(w) == 3 && w[0] == cmdTrigger:
		f.triggers++
	case len(w) == 0 && len(r) == 7:
		if f.busyReads > 0 {
			f.busyReads--
			status |= statusBusy
		}
		r[0] = status
		h, t := f.hraw, f.traw
		r[1] = byte((h >> 12) & 0xFF)
		r[2] = byte((h >> 4) & 0xFF)
		r[3] = byte(((h & 0xF) << 4) | ((t >> 16) & 0x0F))
		r[4] = byte((t >> 8) & 0xFF)
		r[5] = byte(t & 0xFF)
		r[6] = crc8(r[:6])
		if f.badCRC {
			r[6] ^= 0xFF
		}
	}
	return nil
}

func TestReadConverts(t *testing.T) {
	bus := newFakeAHT20()
	bus.busyReads = 2
	d := New(bus)
	d.Configure(Config{PollInterval: time.Millisecond})

	s, err := d.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bus.triggers != 1 {
		t.Fatalf("triggers = %d, want 1", bus.triggers)
	}
	if got := s.Celsius(); math.Abs(float64(got)-25) > 0.01 {
		t.Fatalf("Celsius = %v, want 25", got)
	}
	if got := s.RelHumidity(); math.Abs(float64(got)-55) > 0.01 {
		t.Fatalf("RelHumidity = %v, want 55", got)
	}
}

func TestConfigureInitialisesUncalibrated(t *testing.T) {
	bus := newFakeAHT20()
	bus.calib = false
	New(bus).Configure(Config{})
	if !bus.calib {
		t.Fatalf("Configure did not send the initialise command")
	}
}

func TestReadTimeout(t *testing.T) {
	bus := newFakeAHT20()
	bus.busyReads = 1 << 20
	d := New(bus)
	d.Configure(Config{PollInterval: time.Millisecond, CollectTimeout: 5 * time.Millisecond})
	if _, err := d.Read(); err != ErrTimeout {
		t.Fatalf("Read err = %v, want ErrTimeout", err)
	}
}

func TestReadChecksum(t *testing.T) {
	bus := newFakeAHT20()
	bus.badCRC = true
	d := New(bus)
	d.Configure(Config{})
	if _, err := d.Read(); err != ErrChecksum {
		t.Fatalf("Read err = %v, want ErrChecksum", err)
	}

	d.Configure(Config{SkipCRC: true})
	if _, err := d.Read(); err != nil {
		t.Fatalf("Read with SkipCRC: %v", err)
	}
}

func TestReadBusError(t *testing.T) {
	boom := errors.New("bus contention")
	bus := newFakeAHT20()
	d := New(bus)
	d.Configure(Config{})
	bus.txErr = boom
	if _, err := d.Read(); err != boom {
		t.Fatalf("Read err = %v, want %v", err, boom)
	}
}

func TestCRC8KnownVector(t *testing.T) {
	// Sensirion reference: 0xBEEF -> 0x92.
	if got := crc8([]byte{0xBE, 0xEF}); got != 0x92 {
		t.Fatalf("crc8(BEEF) = %#x, want 0x92", got)
	}
}
