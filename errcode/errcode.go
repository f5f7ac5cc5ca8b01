package errcode

import "errors"

// Code is a stable, short error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"
	InvalidIcon   Code = "invalid_icon"

	SensorFault  Code = "sensor_fault"
	Timeout      Code = "timeout"
	Checksum     Code = "checksum"
	NotReady     Code = "not_ready"
	RateLimited  Code = "rate_limited" // polled inside the driver's update window
	DisplayFault Code = "display_fault"
	UnknownPin   Code = "unknown_pin"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns an *E carrying op and cause, classified by MapDriverErr.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := ""
	if Of(err) == Error {
		msg = err.Error()
	}
	return &E{C: MapDriverErr(err), Op: op, Msg: msg, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return Error
}

// driverErrs maps driver error texts seen on the sensor buses to a Code.
// The drivers expose untyped or package-private errors, so matching is by text.
var driverErrs = []struct {
	sub string
	c   Code
}{
	{"timeout", Timeout},
	{"checksum", Checksum},
	{"not ready", NotReady},
	{"cannot update now", RateLimited},
	{"no signal", Timeout},
	{"no data", SensorFault},
	{"protocol", SensorFault},
}

// MapDriverErr maps low-level driver errors to a Code.
// Errors that already carry a Code keep it; anything unrecognised becomes
// SensorFault.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if c := Of(err); c != Error {
		return c
	}
	s := lower(err.Error())
	for _, m := range driverErrs {
		if contains(s, m.sub) {
			return m.c
		}
	}
	return SensorFault
}

// lower and contains avoid pulling strings/unicode tables into MCU builds.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func contains(s, sub string) bool {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if s[i:i+n] == sub {
			return true
		}
	}
	return false
}
