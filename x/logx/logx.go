// Package logx writes single-line "[tag] message" diagnostics without fmt.
package logx

import "io"

// Line writes one "[tag] msg..." diagnostic line to w. Parts are joined with
// spaces; nil w discards. Lines end in CRLF for serial terminals.
func Line(w io.Writer, tag string, parts ...string) {
	if w == nil {
		return
	}
	n := len(tag) + 4
	for _, p := range parts {
		n += len(p) + 1
	}
	b := make([]byte, 0, n)
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, ']')
	for _, p := range parts {
		b = append(b, ' ')
		b = append(b, p...)
	}
	b = append(b, '\r', '\n')
	_, _ = w.Write(b)
}
