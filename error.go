package clima

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConfiguration
	ErrEndpointUnavailable
	ErrUpstream
	ErrUnknownTool
	ErrBadArguments
	ErrToolFailed
	ErrMaxTokens
	ErrRefusal
	ErrInternalServerError
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConfiguration:
		return "missing or invalid configuration"
	case ErrEndpointUnavailable:
		return "endpoint unavailable"
	case ErrUpstream:
		return "unexpected upstream response"
	case ErrUnknownTool:
		return "unknown tool"
	case ErrBadArguments:
		return "malformed tool arguments"
	case ErrToolFailed:
		return "tool execution failed"
	case ErrMaxTokens:
		return "response truncated: max tokens reached"
	case ErrRefusal:
		return "model refused to respond"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
