package heartbeat

import (
	"context"
	"strings"
	"testing"
	"time"

	"statuspanel-go/x/timex"
)

type countingPin struct {
	on      bool
	toggles int
}

func (p *countingPin) High() { p.on = true; p.toggles++ }
func (p *countingPin) Low()  { p.on = false; p.toggles++ }

// cancelAfter cancels once n sleeps have happened.
type cancelAfter struct {
	timex.Manual
	n      int
	cancel context.CancelFunc
}

func (c *cancelAfter) Sleep(d time.Duration) {
	c.Manual.Sleep(d)
	if c.Sleeps >= c.n {
		c.cancel()
	}
}

func TestHaltBlinksAndReports(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clk := &cancelAfter{n: 23, cancel: cancel}
	pin := &countingPin{}
	var diag strings.Builder

	New(pin, clk, &diag, Config{Period: 100 * time.Millisecond, ReportEvery: 5}).Halt(ctx, "display_fault")

	// 11 full cycles (22 sleeps) plus the on-half of the twelfth.
	if pin.toggles != 24 {
		t.Fatalf("toggles = %d, want 24", pin.toggles)
	}
	if pin.on {
		t.Fatalf("LED left on after Halt returned")
	}
	if clk.Slept != 1150*time.Millisecond {
		t.Fatalf("slept %v, want 1.15s", clk.Slept)
	}
	if got := strings.Count(diag.String(), "[heartbeat] halted: display_fault\r\n"); got != 3 {
		t.Fatalf("fault reported %d times, want 3 (cycles 0, 5, 10): %q", got, diag.String())
	}
}

func TestDefaults(t *testing.T) {
	s := New(&countingPin{}, nil, nil, Config{})
	if s.cfg.Period != 500*time.Millisecond || s.cfg.ReportEvery != 10 {
		t.Fatalf("defaults = %+v", s.cfg)
	}
	if _, ok := s.clock.(timex.Real); !ok {
		t.Fatalf("nil clock should default to timex.Real")
	}
}
