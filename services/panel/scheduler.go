package panel

import (
	"context"
	"io"
	"time"

	"statuspanel-go/errcode"
	"statuspanel-go/types"
	"statuspanel-go/x/logx"
	"statuspanel-go/x/strconvx"
	"statuspanel-go/x/timex"
)

// EnvSensor yields a paired reading, absent on fault. *sensors.Environmental
// satisfies it.
type EnvSensor interface {
	Read() types.Reading
}

// ThermalSensor yields the on-die temperature. *thermal.Sensor satisfies it.
type ThermalSensor interface {
	Read() float32
}

// Waker is implemented by surfaces whose panel must be woken once at start.
type Waker interface {
	Wake() error
}

// SystemContext bundles the hardware handles the loop drives. It is built
// once at startup and owned by the Scheduler.
type SystemContext struct {
	Display Surface
	Env     EnvSensor
	Onboard ThermalSensor
	Clock   timex.Clock
	Diag    io.Writer // optional; startup lines only
}

// Stats counts loop activity since boot.
type Stats struct {
	Frames       uint64
	Samples      uint64
	CommitErrors uint64
	LastCommit   errcode.Code
}

// Scheduler runs the refresh loop: every frame it moves the activity pixel,
// and every SampleInterval frames it also resamples both sensors and redraws
// their text regions.
type Scheduler struct {
	sys   SystemContext
	cfg   Config
	anim  *Animation
	phase uint32 // frames since the last sample, in [0, SampleInterval)
	stats Stats
}

// NewScheduler validates sys and applies defaults to cfg. A nil Clock means
// real sleeps.
func NewScheduler(sys SystemContext, cfg Config) (*Scheduler, error) {
	if sys.Display == nil || sys.Env == nil || sys.Onboard == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "panel.scheduler", Msg: "missing hardware handle"}
	}
	if sys.Clock == nil {
		sys.Clock = timex.Real{}
	}
	cfg = cfg.withDefaults()
	return &Scheduler{
		sys:  sys,
		cfg:  cfg,
		anim: NewAnimation(cfg.Layout.TrackWidth),
	}, nil
}

// Prime wakes the panel, blanks it and blits the static icons. Nothing is
// committed until the first frame.
func (s *Scheduler) Prime() error {
	if w, ok := s.sys.Display.(Waker); ok {
		if err := w.Wake(); err != nil {
			logx.Line(s.sys.Diag, "panel", "wake failed:", err.Error())
			return err
		}
	}
	l := s.cfg.Layout
	s.sys.Display.ClearRegion(types.Region{W: l.Width, H: l.Height})
	for _, p := range l.Icons {
		s.sys.Display.BlitIcon(p.Icon, p.At.X, p.At.Y)
	}
	logx.Line(s.sys.Diag, "panel", "primed",
		strconvx.Itoa(int(l.Width))+"x"+strconvx.Itoa(int(l.Height)),
		"sample every", strconvx.Itoa(int(s.cfg.SampleInterval)), "frames")
	return nil
}

// Step renders one frame and reports whether it sampled the sensors.
func (s *Scheduler) Step() bool {
	l := &s.cfg.Layout
	d := s.sys.Display

	d.SetPixel(s.anim.Position(), l.TrackY, false)

	sampled := s.phase == 0
	if sampled {
		s.drawEnv(s.sys.Env.Read())
		s.drawOnboard(s.sys.Onboard.Read())
		s.stats.Samples++
	}
	if s.phase++; s.phase >= s.cfg.SampleInterval {
		s.phase = 0
	}

	d.SetPixel(s.anim.Advance(), l.TrackY, true)

	if err := d.Commit(); err != nil {
		s.stats.CommitErrors++
		s.stats.LastCommit = errcode.Of(err)
	} else {
		s.stats.LastCommit = errcode.OK
	}
	s.stats.Frames++
	return sampled
}

func (s *Scheduler) drawEnv(r types.Reading) {
	l := &s.cfg.Layout
	d := s.sys.Display
	d.ClearRegion(l.EnvRegion)
	d.DrawText(l.EnvTempAt.X, l.EnvTempAt.Y, EnvTempText(r))
	d.DrawText(l.HumidityAt.X, l.HumidityAt.Y, HumidityText(r))
}

func (s *Scheduler) drawOnboard(c float32) {
	l := &s.cfg.Layout
	d := s.sys.Display
	d.ClearRegion(l.OnboardArea)
	d.DrawText(l.OnboardAt.X, l.OnboardAt.Y, OnboardText(c))
}

// Run primes the panel and then renders a frame every FramePeriod. On the
// device ctx is never cancelled and Run does not return; host callers may
// cancel it, and the error is ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Prime(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Step()
		s.sys.Clock.Sleep(s.cfg.FramePeriod)
	}
}

func (s *Scheduler) Stats() Stats               { return s.stats }
func (s *Scheduler) Animation() *Animation      { return s.anim }
func (s *Scheduler) FramePeriod() time.Duration { return s.cfg.FramePeriod }
func (s *Scheduler) Layout() Layout             { return s.cfg.Layout }
