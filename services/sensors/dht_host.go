//go:build linux && !tinygo

package sensors

import (
	godht "github.com/MichaelS11/go-dht"

	"statuspanel-go/errcode"
)

// HostDHT reads a DHT22 wired to a Linux SBC GPIO (e.g. "GPIO22").
type HostDHT struct {
	d *godht.DHT
}

// NewHostDHT initialises the host GPIO layer and opens pin.
func NewHostDHT(pin string) (*HostDHT, error) {
	if err := godht.HostInit(); err != nil {
		return nil, errcode.Wrap("dht.host_init", err)
	}
	d, err := godht.NewDHT(pin, godht.Celsius, "")
	if err != nil {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "dht.open", Msg: pin, Err: err}
	}
	return &HostDHT{d: d}, nil
}

// Read does a single attempt; the next scheduled sample is the retry.
func (h *HostDHT) Read() (float32, float32, error) {
	rh, t, err := h.d.Read()
	if err != nil {
		return 0, 0, errcode.Wrap("dht.read", err)
	}
	return float32(t), float32(rh), nil
}
