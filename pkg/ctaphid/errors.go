package ctaphid

import "errors"

var (
	// ErrMessageTooLarge is returned by Emit when payload exceeds what a
	// single CTAPHID message can carry over a 16-bit bcnt field.
	ErrMessageTooLarge = errors.New("ctaphid: message payload too large")
)
