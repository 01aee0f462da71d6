package houses

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeInvalidSystem marks an unrecognized system tag.
	CodeInvalidSystem Code = "INVALID_SYSTEM"
	// CodeInvalidParameter marks a non-finite or out-of-range numeric input.
	CodeInvalidParameter Code = "INVALID_PARAMETER"
	// CodeLatitudeLimitExceeded marks a latitude outside a system's domain.
	CodeLatitudeLimitExceeded Code = "LATITUDE_LIMIT_EXCEEDED"
)

// Sentinels for errors.Is; matching is by code only.
var (
	ErrInvalidSystem         = &Error{Code: CodeInvalidSystem, Message: "invalid house system"}
	ErrInvalidParameter      = &Error{Code: CodeInvalidParameter, Message: "invalid parameter"}
	ErrLatitudeLimitExceeded = &Error{Code: CodeLatitudeLimitExceeded, Message: "latitude limit exceeded"}
)

// Error is the engine's failure type. Every error the engine returns is
// fatal for that call; nothing is retried and no partial cusps accompany it.
type Error struct {
	Code    Code
	Message string

	// Param names the offending input ("latitude", "obliquity", ...).
	Param string
	// Range describes what the parameter must satisfy.
	Range string
	// Value is the rejected numeric input, when there is one.
	Value float64
	// System is set for latitude-limit failures.
	System System
	// Suggested lists systems that accept the same input.
	Suggested []System
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func invalidSystem(tag string) *Error {
	return &Error{
		Code:    CodeInvalidSystem,
		Message: fmt.Sprintf("invalid house system %q: want one of %s", tag, systemList()),
		Param:   "system",
		Range:   systemList(),
	}
}

func invalidParameter(param, want string, value float64) *Error {
	return &Error{
		Code:    CodeInvalidParameter,
		Message: fmt.Sprintf("invalid %s %s: must be %s", param, strconv.FormatFloat(value, 'g', -1, 64), want),
		Param:   param,
		Range:   want,
		Value:   value,
	}
}

func latitudeLimitExceeded(s System, latitude float64) *Error {
	limit, _ := s.LatitudeLimit()
	return &Error{
		Code: CodeLatitudeLimitExceeded,
		Message: fmt.Sprintf("%s houses are undefined at latitude %.4f: |latitude| must not exceed %g",
			s, latitude, limit),
		Param:     "latitude",
		Range:     fmt.Sprintf("[-%g, %g]", limit, limit),
		Value:     latitude,
		System:    s,
		Suggested: []System{SystemEqual, SystemWholeSign},
	}
}

func systemList() string {
	tags := make([]string, len(Systems))
	for i, s := range Systems {
		tags[i] = s.String()
	}
	return strings.Join(tags, ", ")
}
