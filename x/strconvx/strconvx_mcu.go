//go:build rp2040

package strconvx

// Same signatures as strconv, built on the append helpers so the firmware
// does not link strconv's float tables. Bases 2..36; anything else is 10.

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	var buf [65]byte
	return string(appendInt(buf[:0], i, validBase(base)))
}

func FormatUint(u uint64, base int) string {
	var buf [64]byte
	return string(appendUint(buf[:0], u, validBase(base)))
}

// FormatFloat only produces the 'f' form; other verbs fall back to it.
func FormatFloat(f float64, _ byte, prec, _ int) string {
	return FormatFixed(f, prec)
}
