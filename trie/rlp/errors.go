package rlp

import "fmt"

// ErrEmptyInput is returned when decoding requires at least one byte
// but none remain.
var ErrEmptyInput = fmt.Errorf("rlp: empty input")

// ErrInvalidLengthEncoding is returned when a long-form length field
// has a leading zero byte, or when a length under 56 is encoded using
// the long form.
var ErrInvalidLengthEncoding = fmt.Errorf("rlp: invalid length encoding")

// ErrLengthTooLarge is returned when a declared length does not fit
// in an int on this platform.
var ErrLengthTooLarge = fmt.Errorf("rlp: declared length too large")

// InsufficientDataError is returned when a declared length runs past
// the end of the input buffer.
type InsufficientDataError struct {
	Expected int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("rlp: insufficient data: expected %d bytes, got %d", e.Expected, e.Actual)
}

// TrailingBytesError is returned by Decode when the input has more
// bytes than the single top-level value consumed.
type TrailingBytesError struct {
	Decoded int
	Total   int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("rlp: trailing bytes: consumed %d of %d bytes", e.Decoded, e.Total)
}
