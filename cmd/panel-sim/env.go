//go:build !tinygo

package main

import (
	"os"
	"strconv"
)

const defaultEnvFile = "panel-sim.env"

// envFile names the dotenv file; PANEL_ENV_FILE overrides the default.
func envFile() string { return envStr("PANEL_ENV_FILE", defaultEnvFile) }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt ignores malformed values.
func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}
