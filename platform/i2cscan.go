package platform

import (
	"tinygo.org/x/drivers"

	"statuspanel-go/x/strconvx"
)

// First and last non-reserved 7-bit I2C addresses.
const (
	scanFirst = 0x08
	scanLast  = 0x77
)

// ScanI2C probes every non-reserved address with a one-byte read and
// returns those that acknowledged.
func ScanI2C(bus drivers.I2C) []uint16 {
	var found []uint16
	var buf [1]byte
	for addr := uint16(scanFirst); addr <= scanLast; addr++ {
		if bus.Tx(addr, nil, buf[:]) == nil {
			found = append(found, addr)
		}
	}
	return found
}

// ScanLine renders addrs as "0x3c 0x38" (or "none") for the console.
func ScanLine(addrs []uint16) []string {
	if len(addrs) == 0 {
		return []string{"none"}
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		h := strconvx.FormatUint(uint64(a), 16)
		if len(h) < 2 {
			h = "0" + h
		}
		out[i] = "0x" + h
	}
	return out
}
