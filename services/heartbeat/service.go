// Package heartbeat blinks the status LED after a fatal boot fault so a
// headless board still signals that it is alive but not running.
package heartbeat

import (
	"context"
	"io"
	"time"

	"statuspanel-go/x/logx"
	"statuspanel-go/x/timex"
)

// Pin is the LED being driven.
type Pin interface {
	High()
	Low()
}

type Config struct {
	// Period is one full on/off cycle. Default 500 ms.
	Period time.Duration
	// ReportEvery is the number of cycles between repeats of the fault line
	// on the diagnostic writer. Default 10.
	ReportEvery int
}

type Service struct {
	pin   Pin
	clock timex.Clock
	diag  io.Writer
	cfg   Config
}

func New(pin Pin, clock timex.Clock, diag io.Writer, cfg Config) *Service {
	if cfg.Period <= 0 {
		cfg.Period = 500 * time.Millisecond
	}
	if cfg.ReportEvery <= 0 {
		cfg.ReportEvery = 10
	}
	if clock == nil {
		clock = timex.Real{}
	}
	return &Service{pin: pin, clock: clock, diag: diag, cfg: cfg}
}

// Halt blinks until ctx is cancelled, re-announcing reason periodically so a
// console attached late still sees it. Firmware passes Background.
func (s *Service) Halt(ctx context.Context, reason string) {
	half := s.cfg.Period / 2
	for n := 0; ; n++ {
		if n%s.cfg.ReportEvery == 0 {
			logx.Line(s.diag, "heartbeat", "halted:", reason)
		}
		s.pin.High()
		s.clock.Sleep(half)
		s.pin.Low()
		if ctx.Err() != nil {
			return
		}
		s.clock.Sleep(s.cfg.Period - half)
	}
}
