package ctap

import "github.com/go-ctap/fido2-authenticator/pkg/ctaphid"

// StatusCode is a CTAP2 response status byte: 0x00 on success, non-zero on
// error. Every dispatcher response begins with exactly one of these. It is
// an alias of ctaphid.StatusCode so the HID framing layer and the command
// dispatcher share one status vocabulary instead of two overlapping ones.
type StatusCode = ctaphid.StatusCode

const (
	CTAP2_OK                  = ctaphid.CTAP2_OK
	CTAP1_ERR_INVALID_COMMAND = ctaphid.CTAP1_ERR_INVALID_COMMAND
	CTAP1_ERR_INVALID_LENGTH  = ctaphid.CTAP1_ERR_INVALID_LENGTH
	CTAP1_ERR_OTHER           = ctaphid.CTAP1_ERR_OTHER
	CTAP2_ERR_INVALID_CBOR    = ctaphid.CTAP2_ERR_INVALID_CBOR
)
