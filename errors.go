package taimeta

import (
	"errors"
	"fmt"
)

// Error kinds returned by the codec.
// Every error produced by this package matches exactly one of these with errors.Is,
// and StatusOf maps any error back to its Status.
var (
	// ErrInvalidParameter reports a nil or malformed input, an out-of-range id,
	// or a value whose concrete type does not match its metadata.
	ErrInvalidParameter = errors.New("taimeta: invalid parameter")

	// ErrNotFound reports an unknown attribute id or name.
	// It is a legitimate absence, not a caller bug.
	ErrNotFound = errors.New("taimeta: not found")

	// ErrUnknownEnumValue reports a numeric enum value with no symbolic name.
	ErrUnknownEnumValue = errors.New("taimeta: unknown enum value")

	// ErrUnknownAttrValue reports a text token with no mapping in the enum table.
	ErrUnknownAttrValue = errors.New("taimeta: unknown attribute value")

	// ErrBufferOverflow reports output or parsed list size exceeding the caller capacity.
	ErrBufferOverflow = errors.New("taimeta: buffer overflow")

	// ErrNoMemory reports an allocation request the codec refuses to satisfy.
	ErrNoMemory = errors.New("taimeta: no memory")
)

// Status is the kind of an error, independent of its representation.
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalidParameter
	StatusNotFound
	StatusUnknownEnumValue
	StatusUnknownAttrValue
	StatusBufferOverflow
	StatusNoMemory
	StatusFailure
)

var statusNames = [...]string{
	StatusSuccess:          "SUCCESS",
	StatusInvalidParameter: "INVALID_PARAMETER",
	StatusNotFound:         "NOT_FOUND",
	StatusUnknownEnumValue: "UNKNOWN_ENUM_VALUE",
	StatusUnknownAttrValue: "UNKNOWN_ATTR_VALUE",
	StatusBufferOverflow:   "BUFFER_OVERFLOW",
	StatusNoMemory:         "NO_MEMORY",
	StatusFailure:          "FAILURE",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// StatusOf classifies err.
//
// Returns StatusSuccess for nil and StatusFailure for errors that did not
// originate from this package.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrBufferOverflow):
		return StatusBufferOverflow
	case errors.Is(err, ErrUnknownEnumValue):
		return StatusUnknownEnumValue
	case errors.Is(err, ErrUnknownAttrValue):
		return StatusUnknownAttrValue
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	case errors.Is(err, ErrNoMemory):
		return StatusNoMemory
	case errors.Is(err, ErrInvalidParameter):
		return StatusInvalidParameter
	default:
		return StatusFailure
	}
}

// BufferOverflowError is returned when a destination is too small.
//
// Needed is the capacity (list elements or output bytes) the operation
// required. For serialization it is the full length of the rendered text,
// so callers can size a buffer with a zero-length first call.
type BufferOverflowError struct {
	Needed   int
	Capacity int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("taimeta: buffer overflow: need %d, capacity %d", e.Needed, e.Capacity)
}

func (e *BufferOverflowError) Is(target error) bool {
	return target == ErrBufferOverflow
}

// ParseError represents text that could not be parsed into a value.
type ParseError struct {
	Input   string
	Message string
	Err     error // Underlying error, if any
}

func (e *ParseError) Error() string {
	msg := "taimeta: parse error: " + e.Message
	if e.Input != "" {
		msg += fmt.Sprintf(" (input %q)", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// UnknownEnumValueError is returned when a numeric value has no symbolic name
// and the caller asked for one.
type UnknownEnumValueError struct {
	Enum  string
	Value int32
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("taimeta: unknown value %d for enum %s", e.Value, e.Enum)
}

func (e *UnknownEnumValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

// UnknownValueError is returned when a text token does not name an enum value.
type UnknownValueError struct {
	Enum  string
	Token string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("taimeta: %q is not a value of enum %s", e.Token, e.Enum)
}

func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownAttrValue
}

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}
