package panel

import (
	"statuspanel-go/types"
	"statuspanel-go/x/strconvx"
)

// Placeholders shown when the environmental sample failed.
const (
	TempPlaceholder     = "--"
	HumidityPlaceholder = "--%"
)

// EnvTempText renders the sensor temperature as "%4.1fC".
func EnvTempText(r types.Reading) string {
	t, ok := r.Temperature()
	if !ok {
		return TempPlaceholder
	}
	return strconvx.PadLeft(strconvx.FormatFloat(float64(t), 'f', 1, 32), 4) + "C"
}

// HumidityText renders the truncated integer humidity as "%2d%%".
func HumidityText(r types.Reading) string {
	h, ok := r.Humidity()
	if !ok {
		return HumidityPlaceholder
	}
	return strconvx.PadLeft(strconvx.Itoa(int(h)), 2) + "%"
}

// OnboardText renders the on-die temperature as "%2.0fC".
func OnboardText(c float32) string {
	return strconvx.PadLeft(strconvx.FormatFloat(float64(c), 'f', 0, 32), 2) + "C"
}
