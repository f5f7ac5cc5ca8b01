//go:build !tinygo && !cgo

package main

import (
	"context"
	"testing"

	"statuspanel-go/errcode"
)

func TestWindowWithoutCgoIsUnsupported(t *testing.T) {
	err := runWindow(context.Background(), nil, nil, 1, 0)
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("runWindow err = %v, want unsupported", err)
	}
}
