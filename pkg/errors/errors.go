// Package errors provides the single rich error type used across the gateway.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
)

// Code identifies a failure class in the tool-facing taxonomy.
type Code string

// Severity represents how bad the error is from 0‥4.
type Severity uint8

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Rich wraps every error flowing through the gateway.
type Rich struct {
	Code       Code           `json:"code"`
	Domain     string         `json:"domain,omitempty"`
	Severity   Severity       `json:"severity"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	UserFacing bool           `json:"user_facing"`
	Location   string         `json:"location"`
	Cause      error          `json:"-"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// Error implements error.
func (r *Rich) Error() string { return fmt.Sprintf("%s: %s", r.Code, r.Message) }
func (r *Rich) Unwrap() error { return r.Cause }

// New builds a Rich error in one line.
//
//	errors.New(CodeInvalidButton, "mouse", "unrecognized button", nil)
func New(code Code, domain, msg string, cause error) *Rich {
	_, file, line, _ := runtime.Caller(1)

	severity, retryable := codeMetadata(code)

	return &Rich{
		Code:       code,
		Domain:     domain,
		Message:    msg,
		Cause:      cause,
		Severity:   severity,
		Retryable:  retryable,
		UserFacing: true,
		Location:   fmt.Sprintf("%s:%d", file, line),
	}
}

// Newf is New with a formatted message.
func Newf(code Code, domain string, cause error, format string, args ...any) *Rich {
	r := New(code, domain, fmt.Sprintf(format, args...), cause)
	_, file, line, _ := runtime.Caller(1)
	r.Location = fmt.Sprintf("%s:%d", file, line)
	return r
}

// With attaches a structured field to the error and returns it.
func (r *Rich) With(key string, val any) *Rich {
	if r.Fields == nil {
		r.Fields = make(map[string]any, 4)
	}
	r.Fields[key] = val
	return r
}

// JSON renders the error for embedding in tool results.
func (r *Rich) JSON() string {
	out, _ := json.Marshal(r)
	return string(out)
}

// CodeOf extracts the taxonomy code from any error, CodeInternal when the
// error did not originate here.
func CodeOf(err error) Code {
	var rich *Rich
	if errors.As(err, &rich) {
		return rich.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
