package strconvx

// Append-style helpers shared by the MCU build and the fixed-point
// formatter. None of them touch strconv.

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func appendUint(dst []byte, u uint64, base int) []byte {
	if u == 0 {
		return append(dst, '0')
	}
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return append(dst, buf[i:]...)
}

func appendInt(dst []byte, i int64, base int) []byte {
	if i < 0 {
		// uint64(-i) is exact for math.MinInt64 as well.
		return appendUint(append(dst, '-'), uint64(-i), base)
	}
	return appendUint(dst, uint64(i), base)
}

// validBase maps out-of-range bases to 10.
func validBase(base int) int {
	if base < 2 || base > 36 {
		return 10
	}
	return base
}

// FormatFixed renders f with prec fractional digits. Exact ties round to
// even, as strconv does, so host and MCU builds print the same text.
// NaN and infinities are not handled; callers pass sensor values.
func FormatFixed(f float64, prec int) string {
	if prec < 0 {
		prec = 6
	}
	neg := f < 0
	if neg {
		f = -f
	}
	pow := uint64(1)
	for i := 0; i < prec; i++ {
		pow *= 10
	}
	// Round once on the scaled value so a carry out of the fraction
	// (9.96 -> "10.0") reaches the integer part.
	x := f * float64(pow)
	scaled := uint64(x)
	if rem := x - float64(scaled); rem > 0.5 || (rem == 0.5 && scaled&1 == 1) {
		scaled++
	}
	intp, frac := scaled/pow, scaled%pow

	var buf [32]byte
	out := buf[:0]
	if neg && scaled != 0 {
		out = append(out, '-')
	}
	out = appendUint(out, intp, 10)
	if prec > 0 {
		out = append(out, '.')
		mark := len(out)
		out = appendUint(out, frac, 10)
		if pad := prec - (len(out) - mark); pad > 0 {
			out = append(out, make([]byte, pad)...)
			copy(out[mark+pad:], out[mark:len(out)-pad])
			for i := mark; i < mark+pad; i++ {
				out[i] = '0'
			}
		}
	}
	return string(out)
}

// PadLeft right-aligns s in a field of width, like the %Nd / %N.Mf verbs.
func PadLeft(s string, width int) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	b := make([]byte, width)
	for i := 0; i < n; i++ {
		b[i] = ' '
	}
	copy(b[n:], s)
	return string(b)
}
