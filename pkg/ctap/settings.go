package ctap

import (
	"github.com/google/uuid"
	"github.com/ldclabs/cose/iana"
	"github.com/ldclabs/cose/key"

	"github.com/go-ctap/fido2-authenticator/pkg/ctaptypes"
	"github.com/go-ctap/fido2-authenticator/pkg/webauthntypes"
)

// AlgorithmDescriptor names one COSE signature algorithm an authenticator
// accepts for credential creation.
type AlgorithmDescriptor struct {
	Type webauthntypes.PublicKeyCredentialType
	Alg  key.Alg
}

// Settings is the authenticator's getInfo-backing state: a sparse map
// keyed by the CTAP response index 0x01..0x18. A field is omitted from the
// encoded response unless populated; slices/maps use nil-means-absent,
// scalar fields that have a meaningful absent state use a pointer.
type Settings struct {
	Versions                         []ctaptypes.Version
	Extensions                       []webauthntypes.ExtensionIdentifier
	AAGUID                            uuid.UUID
	Options                           map[ctaptypes.Option]bool
	MaxMsgSize                        *uint64
	PinUvAuthProtocols                []ctaptypes.PinUvAuthProtocol
	MaxCredentialCountInList          *uint64
	MaxCredentialIDLength             *uint64
	Transports                        []webauthntypes.AuthenticatorTransport
	Algorithms                        []AlgorithmDescriptor
	MaxSerializedLargeBlobArray       *uint64
	ForcePINChange                    *bool
	MinPINLength                      *uint64
	FirmwareVersion                   *uint64
	MaxCredBlobLength                 *uint64
	MaxRPIDsForSetMinPINLength        *uint64
	PreferredPlatformUvAttempts       *uint64
	UvModality                        *uint64
	Certifications                    map[string]int64
	RemainingDiscoverableCredentials  *uint64
	VendorPrototypeConfigCommands     []uint64
	AttestationFormats                []webauthntypes.AttestationStatementFormatIdentifier
	UvCountSinceLastPinEntry          *uint64
	LongTouchForReset                 *bool
}

// DefaultSettings returns the minimal settings set exercised by the
// reference getInfo response: FIDO_2_1 only, a fixed demonstration AAGUID,
// user presence without resident keys or platform attachment, USB
// transport, and ES256 as the sole supported algorithm.
func DefaultSettings() Settings {
	return Settings{
		Versions: []ctaptypes.Version{ctaptypes.FIDO_2_1},
		AAGUID:   uuid.UUID{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
		Options: map[ctaptypes.Option]bool{
			ctaptypes.OptionResidentKeys:                   false,
			ctaptypes.OptionUserPresence:                   true,
			ctaptypes.OptionPlatformDevice:                 false,
			ctaptypes.OptionMakeCredentialUvNotRequired:    false,
			ctaptypes.OptionNoMcGaPermissionsWithClientPin: false,
		},
		Transports: []webauthntypes.AuthenticatorTransport{webauthntypes.AuthenticatorTransportUSB},
		Algorithms: []AlgorithmDescriptor{
			{Type: webauthntypes.PublicKeyCredentialTypePublicKey, Alg: key.Alg(iana.AlgorithmES256)},
		},
	}
}
