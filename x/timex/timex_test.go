package timex

import (
	"testing"
	"time"
)

func TestPeriodHzRoundTrip(t *testing.T) {
	if got := PeriodFromHz(5); got != uint64(200*time.Millisecond) {
		t.Fatalf("PeriodFromHz(5) = %d", got)
	}
	if got := PeriodFromHz(0); got != uint64(time.Second) {
		t.Fatalf("PeriodFromHz(0) = %d", got)
	}
	if got := HzFromPeriod(200 * time.Millisecond); got != 5 {
		t.Fatalf("HzFromPeriod(200ms) = %d", got)
	}
	if got := HzFromPeriod(3 * time.Second); got != 1 {
		t.Fatalf("HzFromPeriod(3s) = %d", got)
	}
	if got := HzFromPeriod(0); got != 1 {
		t.Fatalf("HzFromPeriod(0) = %d", got)
	}
}

func TestManualClock(t *testing.T) {
	var m Manual
	for i := 0; i < 20; i++ {
		m.Sleep(200 * time.Millisecond)
	}
	if m.Sleeps != 20 || m.Slept != 4*time.Second {
		t.Fatalf("Manual = %+v", m)
	}
}
