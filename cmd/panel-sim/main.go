//go:build !tinygo

// panel-sim runs the status panel against an in-memory SH1106 on the host,
// either in a desktop window or headless with ASCII frames on stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"statuspanel-go/drivers/monobuf"
	"statuspanel-go/errcode"
	"statuspanel-go/platform"
	"statuspanel-go/platform/boards"
	"statuspanel-go/services/panel"
	"statuspanel-go/x/logx"
	"statuspanel-go/x/strconvx"
	"statuspanel-go/x/timex"
)

func main() {
	diag := os.Stderr

	// PANEL_* variables (from the environment or a panel-sim.env file)
	// provide flag defaults.
	if err := godotenv.Load(envFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logx.Line(diag, "sim", "env file:", err.Error())
	}
	var (
		headless   = flag.Bool("headless", envBool("PANEL_HEADLESS", false), "print frames to stdout instead of opening a window")
		frames     = flag.Int("frames", envInt("PANEL_FRAMES", 0), "stop after n frames (0 = run until interrupted)")
		faultEvery = flag.Int("fault-every", envInt("PANEL_FAULT_EVERY", 0), "fail every n-th humidity read (0 = never)")
		seed       = flag.Int64("seed", int64(envInt("PANEL_SEED", 1)), "simulated sensor seed")
		dhtPin     = flag.String("dht-pin", envStr("PANEL_DHT_PIN", ""), "read a real DHT22 on this host GPIO (e.g. GPIO22)")
		ledChip    = flag.String("led-chip", envStr("PANEL_LED_CHIP", "gpiochip0"), "GPIO chip for -led-line")
		ledLine    = flag.Int("led-line", envInt("PANEL_LED_LINE", -1), "mirror the indicator onto this GPIO line (-1 = off)")
		scale      = flag.Int("scale", envInt("PANEL_SCALE", 4), "window pixels per panel pixel")
	)
	flag.Parse()

	w := boards.Selected
	logx.Line(diag, "sim", "board", w.Name)

	h, err := platform.SetupHost(w, platform.HostOptions{
		Seed:       *seed,
		FaultEvery: *faultEvery,
		DHTPin:     *dhtPin,
		LEDChip:    *ledChip,
		LEDLine:    *ledLine,
	}, diag)
	if err != nil {
		exit(diag, err)
	}
	defer h.Close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if *headless && *frames > 0 {
		h.Sys.Clock = &frameLimit{Clock: h.Sys.Clock, left: *frames, cancel: cancel}
	}

	cfg := panel.DefaultConfig()
	s, err := panel.NewScheduler(h.Sys, cfg)
	if err != nil {
		exit(diag, err)
	}

	if *headless {
		dumpSampledFrames(h.Frame, int(cfg.SampleInterval), os.Stdout)
		err = s.Run(ctx)
	} else {
		err = runWindow(ctx, s, h.Frame, *scale, *frames)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		exit(diag, err)
	}

	st, es := s.Stats(), h.Env.Stats()
	logx.Line(diag, "sim", "frames", strconvx.FormatUint(st.Frames, 10),
		"samples", strconvx.FormatUint(st.Samples, 10),
		"env faults", strconvx.Itoa(int(es.Faults)),
		"commit errors", strconvx.FormatUint(st.CommitErrors, 10))
}

// dumpSampledFrames prints the panel after every frame that resampled.
func dumpSampledFrames(fb *monobuf.Buffer, interval int, out io.Writer) {
	fb.OnDisplay(func() error {
		if (fb.Presents()-1)%interval != 0 {
			return nil
		}
		_, err := io.WriteString(out, fb.ASCII(1)+"\n")
		return err
	})
}

// frameLimit cancels after left frames instead of sleeping past the last one.
type frameLimit struct {
	timex.Clock
	left   int
	cancel context.CancelFunc
}

func (f *frameLimit) Sleep(d time.Duration) {
	if f.left--; f.left <= 0 {
		f.cancel()
		return
	}
	f.Clock.Sleep(d)
}

func exit(diag io.Writer, err error) {
	logx.Line(diag, "sim", "fatal:", string(errcode.Of(err)), err.Error())
	os.Exit(1)
}
