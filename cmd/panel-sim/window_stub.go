//go:build !tinygo && !cgo

package main

import (
	"context"

	"statuspanel-go/drivers/monobuf"
	"statuspanel-go/errcode"
	"statuspanel-go/services/panel"
)

func runWindow(_ context.Context, _ *panel.Scheduler, _ *monobuf.Buffer, _, _ int) error {
	return &errcode.E{C: errcode.Unsupported, Op: "sim.window", Msg: "needs cgo (CGO_ENABLED=1) or -headless"}
}
