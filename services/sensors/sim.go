package sensors

import (
	"math/rand"

	"statuspanel-go/errcode"
	"statuspanel-go/x/mathx"
)

// Sim is a deterministic stand-in for the humidity sensor: a slow random
// walk around room conditions with periodic injected faults.
type Sim struct {
	rng        *rand.Rand
	tempC, rh  float32
	faultEvery int
	n          int
}

// NewSim returns a Sim seeded with seed. Every faultEvery-th read fails with
// a checksum error; faultEvery <= 0 disables faults.
func NewSim(seed int64, faultEvery int) *Sim {
	return &Sim{
		rng:        rand.New(rand.NewSource(seed)),
		tempC:      22.5,
		rh:         45,
		faultEvery: faultEvery,
	}
}

func (s *Sim) Read() (float32, float32, error) {
	s.n++
	if s.faultEvery > 0 && s.n%s.faultEvery == 0 {
		return 0, 0, &errcode.E{C: errcode.Checksum, Op: "sim.read"}
	}
	s.tempC = mathx.Clamp(s.tempC+float32(s.rng.NormFloat64()*0.2), -40, 80)
	s.rh = mathx.Clamp(s.rh+float32(s.rng.NormFloat64()), 0, 100)
	return s.tempC, s.rh, nil
}
