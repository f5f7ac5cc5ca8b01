package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// HzFromPeriod is the inverse of PeriodFromHz, rounded to the nearest Hz and
// never below 1.
func HzFromPeriod(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	hz := int((time.Second + d/2) / d)
	if hz < 1 {
		return 1
	}
	return hz
}

// Clock is the suspension point of a cooperative loop.
type Clock interface {
	Sleep(d time.Duration)
}

// Real sleeps on the wall clock.
type Real struct{}

func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Manual records requested sleeps without blocking. The zero value is ready.
type Manual struct {
	Slept  time.Duration
	Sleeps int
}

func (m *Manual) Sleep(d time.Duration) {
	m.Slept += d
	m.Sleeps++
}
