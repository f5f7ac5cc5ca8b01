//go:build !linux && !tinygo

package sensors

import "statuspanel-go/errcode"

// HostDHT is only available on Linux hosts.
type HostDHT struct{}

func NewHostDHT(pin string) (*HostDHT, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "dht.open", Msg: "host GPIO needs linux"}
}

func (*HostDHT) Read() (float32, float32, error) { return 0, 0, errcode.Unsupported }
