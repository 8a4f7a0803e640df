package ctap

import "github.com/go-ctap/fido2-authenticator/pkg/cbor"

// Handler responds to one decoded CTAP2 command. Response bytes must
// include the leading status byte; the dispatcher never rewrites them.
type Handler interface {
	Handle(argument cbor.Value) []byte
}

// HandlerFunc adapts an ordinary function to the Handler interface, the
// way http.HandlerFunc adapts a function to http.Handler.
type HandlerFunc func(argument cbor.Value) []byte

func (f HandlerFunc) Handle(argument cbor.Value) []byte {
	return f(argument)
}
