//go:build rp2040

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
	"statuspanel-go/x/logx"
	"statuspanel-go/x/timex"
)

func main() {
	w := boards.Selected

	led := machine.Pin(w.LEDPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	diag, err := platform.Console(w)
	if err != nil {
		// No console; blink only.
		halt(led, nil, err)
	}
	// Let a terminal attach before the first line.
	time.Sleep(2 * time.Second)
	logx.Line(diag, "main", "boot", w.Name)

	sys, _, err := platform.Setup(w, diag)
	if err != nil {
		halt(led, diag, err)
	}
	s, err := panel.NewScheduler(sys, panel.DefaultConfig())
	if err != nil {
		halt(led, diag, err)
	}
	logx.Line(diag, "main", "running")
	if err := s.Run(context.Background()); err != nil {
		halt(led, diag, err)
	}
}

// halt never returns.
func halt(led machine.Pin, diag io.Writer, err error) {
	logx.Line(diag, "main", "fatal:", string(errcode.Of(err)), err.Error())
	heartbeat.New(led, timex.Real{}, diag, heartbeat.Config{}).Halt(context.Background(), string(errcode.Of(err)))
}
