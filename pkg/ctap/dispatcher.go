package ctap

import (
	"github.com/go-ctap/fido2-authenticator/pkg/cbor"
	"github.com/go-ctap/fido2-authenticator/pkg/ctaptypes"
)

// Authenticator routes decoded CTAP2 commands to registered handlers and
// serves authenticatorGetInfo directly from its settings. It holds no
// other state and is not modified after New returns, so concurrent calls
// to CBOR are safe as long as the registered handlers are.
type Authenticator struct {
	settings Settings
	handlers map[ctaptypes.Command]Handler
}

// AuthenticatorOption configures an Authenticator at construction.
type AuthenticatorOption func(*Authenticator)

// WithSettings overrides the default settings.
func WithSettings(s Settings) AuthenticatorOption {
	return func(a *Authenticator) { a.settings = s }
}

// WithHandler registers a handler for a command byte. Registering
// authenticatorGetInfo (0x04) has no effect: the dispatcher always serves
// it directly from settings.
func WithHandler(cmd ctaptypes.Command, h Handler) AuthenticatorOption {
	return func(a *Authenticator) { a.handlers[cmd] = h }
}

// New constructs an Authenticator with DefaultSettings and no handlers
// beyond the built-in authenticatorGetInfo.
func New(opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		settings: DefaultSettings(),
		handlers: make(map[ctaptypes.Command]Handler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CBOR implements the dispatcher's cbor(request_bytes) -> response_bytes
// operation: it decodes the command byte and CBOR argument, serves
// authenticatorGetInfo directly, delegates to a registered handler, or
// reports CTAP1_ERR_INVALID_COMMAND. The result always begins with a
// single status byte.
func (a *Authenticator) CBOR(request []byte) []byte {
	if len(request) == 0 {
		return []byte{byte(CTAP1_ERR_INVALID_LENGTH)}
	}

	command := ctaptypes.Command(request[0])

	argument := cbor.Map(nil)
	if len(request) > 1 {
		decoded, err := cbor.DecodeAll(request[1:])
		if err != nil {
			return []byte{byte(CTAP2_ERR_INVALID_CBOR)}
		}
		argument = decoded
	}

	if command == ctaptypes.AuthenticatorGetInfo {
		encoded, err := cbor.Encode(encodeGetInfo(a.settings))
		if err != nil {
			// Encoding the authenticator's own settings failing is a
			// programmer error, not a request-shaped one.
			panic(err)
		}
		return append([]byte{byte(CTAP2_OK)}, encoded...)
	}

	if h, ok := a.handlers[command]; ok {
		return h.Handle(argument)
	}

	return []byte{byte(CTAP1_ERR_INVALID_COMMAND)}
}
