//go:build rp2040

// cmd/boardtest walks the panel wiring one peripheral at a time and reports
// each step on the diagnostic console.
package main

import (
	"context"
	"io"
	"machine"
	"time"

	"statuspanel-go/errcode"
	"statuspanel-go/platform"
	"statuspanel-go/platform/boards"
	"statuspanel-go/services/heartbeat"
	"statuspanel-go/services/panel"
	"statuspanel-go/types"
	"statuspanel-go/x/logx"
	"statuspanel-go/x/strconvx"
	"statuspanel-go/x/timex"
)

// ---------- Configuration ----------

const (
	// Sequencing timing
	dwellPattern = 1500 * time.Millisecond
	envSpacing   = 2500 * time.Millisecond // DHT22 minimum is 2 s

	envSamples = 5
)

func main() {
	w := boards.Selected
	led := machine.Pin(w.LEDPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	diag, err := platform.Console(w)
	if err != nil {
		fail(led, nil, "console", err)
	}
	time.Sleep(2 * time.Second)
	logx.Line(diag, "boardtest", "board", w.Name, "env", w.EnvSensor)

	sys, env, err := platform.Setup(w, diag)
	if err != nil {
		fail(led, diag, "setup", err)
	}

	// Display: full frame lit, then the normal icon layout.
	l := panel.DefaultLayout()
	if wk, ok := sys.Display.(panel.Waker); ok {
		if err := wk.Wake(); err != nil {
			fail(led, diag, "wake", err)
		}
	}
	for y := int16(0); y < l.Height; y++ {
		for x := int16(0); x < l.Width; x++ {
			sys.Display.SetPixel(x, y, true)
		}
	}
	if err := sys.Display.Commit(); err != nil {
		fail(led, diag, "display", err)
	}
	logx.Line(diag, "boardtest", "display: all pixels on")
	time.Sleep(dwellPattern)

	sys.Display.ClearRegion(types.Region{W: l.Width, H: l.Height})
	for _, p := range l.Icons {
		sys.Display.BlitIcon(p.Icon, p.At.X, p.At.Y)
	}
	sys.Display.DrawText(l.EnvTempAt.X, l.EnvTempAt.Y, "test")
	if err := sys.Display.Commit(); err != nil {
		fail(led, diag, "display", err)
	}
	logx.Line(diag, "boardtest", "display: icons")

	// Environmental sensor: a few spaced reads.
	for i := 0; i < envSamples; i++ {
		r := env.Read()
		line := []string{"env", strconvx.Itoa(i+1) + "/" + strconvx.Itoa(envSamples)}
		if t, ok := r.Temperature(); ok {
			h, _ := r.Humidity()
			line = append(line, panel.EnvTempText(r), panel.HumidityText(r),
				"raw", strconvx.FormatFloat(float64(t), 'f', 2, 32), strconvx.FormatFloat(float64(h), 'f', 2, 32))
		} else {
			line = append(line, "fault", string(env.Stats().Last))
		}
		logx.Line(diag, "boardtest", line...)
		time.Sleep(envSpacing)
	}
	st := env.Stats()
	logx.Line(diag, "boardtest", "env reads", strconvx.Itoa(int(st.Reads)), "faults", strconvx.Itoa(int(st.Faults)))

	// Onboard thermal sensor.
	c := sys.Onboard.Read()
	logx.Line(diag, "boardtest", "onboard", panel.OnboardText(c))

	logx.Line(diag, "boardtest", "done")
	heartbeat.New(led, timex.Real{}, diag, heartbeat.Config{Period: 2 * time.Second, ReportEvery: 30}).
		Halt(context.Background(), "boardtest complete")
}

func fail(led machine.Pin, diag io.Writer, step string, err error) {
	logx.Line(diag, "boardtest", step, "failed:", string(errcode.Of(err)), err.Error())
	heartbeat.New(led, timex.Real{}, diag, heartbeat.Config{Period: 200 * time.Millisecond}).
		Halt(context.Background(), step+" "+string(errcode.Of(err)))
}
