// Package handlers provides the default, non-cryptographic CTAP2 command
// handlers: the ones an authenticator can serve without touching key
// material, PIN state, or persistent credential storage. Applications
// register the handlers they need with an ctap.Authenticator via
// ctap.WithHandler; these are plain values, not a fixed bundle.
package handlers

import "github.com/go-ctap/fido2-authenticator/pkg/cbor"

// statusOK is the one-byte CTAP2_OK response body shared by handlers that
// carry no further payload.
var statusOK = []byte{0x00}

// Reset answers authenticatorReset (0x07) with bare success, taking no
// action. A real authenticator would erase all resident credentials and PIN
// state here; that belongs to the application, which owns credential
// storage.
func Reset(_ cbor.Value) []byte {
	return statusOK
}

// Selection answers authenticatorSelection (0x0B) with bare success. The
// command exists so a platform can ask "is this the authenticator the user
// wants" across several connected devices; a single-authenticator
// application has nothing further to decide.
func Selection(_ cbor.Value) []byte {
	return statusOK
}
