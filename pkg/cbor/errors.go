package cbor

import "fmt"

// DecodeError reports a decoding failure together with the byte offset at
// which it was detected, to aid diagnostics against a wire capture.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cbor: invalid encoding at offset %d: %s", e.Offset, e.Reason)
}

func newDecodeError(offset int, reason string) *DecodeError {
	return &DecodeError{Offset: offset, Reason: reason}
}

// UnsupportedError reports a value variant the encoder cannot emit. The
// decoder reports tags (major type 6), floats, indefinite-length items and
// break stops as a DecodeError instead.
type UnsupportedError struct {
	Reason string
}

func (e *UnsupportedError) Error() string {
	return "cbor: unsupported construct: " + e.Reason
}

func newUnsupportedError(reason string) *UnsupportedError {
	return &UnsupportedError{Reason: reason}
}

// OutOfRangeError reports an integer that cannot be represented in the
// codec's 64-bit signed-or-unsigned value space.
type OutOfRangeError struct {
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return "cbor: integer out of range: " + e.Reason
}

func newOutOfRangeError(reason string) *OutOfRangeError {
	return &OutOfRangeError{Reason: reason}
}
