package webauthntypes

type (
	// PublicKeyCredentialType defines the valid credential types.
	// https://www.w3.org/TR/webauthn-3/#enumdef-publickeycredentialtype
	PublicKeyCredentialType string
	// AuthenticatorTransport defines hints as to how clients might communicate
	// with a particular authenticator in order to obtain an assertion for a specific credential.
	// https://www.w3.org/TR/webauthn-3/#enumdef-authenticatortransport
	AuthenticatorTransport string
	// AttestationStatementFormatIdentifier is an enum consisting of IANA registered Attestation Statement Format Identifiers.
	// https://www.iana.org/assignments/webauthn/webauthn.xhtml
	AttestationStatementFormatIdentifier string
	// ExtensionIdentifier is an enum consisting of IANA registered Extension Identifiers.
	// https://www.iana.org/assignments/webauthn/webauthn.xhtml
	ExtensionIdentifier string
)

const (
	PublicKeyCredentialTypePublicKey PublicKeyCredentialType = "public-key"
)

const (
	AuthenticatorTransportUSB       AuthenticatorTransport = "usb"
	AuthenticatorTransportNFC       AuthenticatorTransport = "nfc"
	AuthenticatorTransportBLE       AuthenticatorTransport = "ble"
	AuthenticatorTransportSmartCard AuthenticatorTransport = "smart-card"
	AuthenticatorTransportHybrid    AuthenticatorTransport = "hybrid"
	AuthenticatorTransportInternal  AuthenticatorTransport = "internal"
)

const (
	AttestationStatementFormatIdentifierPacked           AttestationStatementFormatIdentifier = "packed"
	AttestationStatementFormatIdentifierTPM              AttestationStatementFormatIdentifier = "tpm"
	AttestationStatementFormatIdentifierAndroidKey       AttestationStatementFormatIdentifier = "android-key"
	AttestationStatementFormatIdentifierAndroidSafetyNet AttestationStatementFormatIdentifier = "android-safetynet"
	AttestationStatementFormatIdentifierFIDOU2F          AttestationStatementFormatIdentifier = "fido-u2f"
	AttestationStatementFormatIdentifierApple            AttestationStatementFormatIdentifier = "apple"
	AttestationStatementFormatIdentifierNone             AttestationStatementFormatIdentifier = "none"
)

const (
	ExtensionIdentifierAppID                  ExtensionIdentifier = "appid"
	ExtensionIdentifierTxAuthSimple           ExtensionIdentifier = "txAuthSimple"
	ExtensionIdentifierTxAuthGeneric          ExtensionIdentifier = "txAuthGeneric"
	ExtensionIdentifierAuthnSelection         ExtensionIdentifier = "authnSel"
	ExtensionIdentifierExtensions             ExtensionIdentifier = "exts"
	ExtensionIdentifierUserVerificationIndex  ExtensionIdentifier = "uvi"
	ExtensionIdentifierLocation               ExtensionIdentifier = "loc"
	ExtensionIdentifierUserVerificationMethod ExtensionIdentifier = "uvm"
	ExtensionIdentifierCredentialProtection   ExtensionIdentifier = "credProtect"
	ExtensionIdentifierCredentialBlob         ExtensionIdentifier = "credBlob"
	ExtensionIdentifierLargeBlobKey           ExtensionIdentifier = "largeBlobKey"
	ExtensionIdentifierMinPinLength           ExtensionIdentifier = "minPinLength"
	ExtensionIdentifierPinComplexityPolicy    ExtensionIdentifier = "pinComplexityPolicy"
	ExtensionIdentifierHMACSecret             ExtensionIdentifier = "hmac-secret"
	ExtensionIdentifierHMACSecretMC           ExtensionIdentifier = "hmac-secret-mc"
	ExtensionIdentifierAppIDExclude           ExtensionIdentifier = "appidExclude"
	ExtensionIdentifierCredentialProperties   ExtensionIdentifier = "credProps"
	ExtensionIdentifierLargeBlob              ExtensionIdentifier = "largeBlob"
	ExtensionIdentifierPayment                ExtensionIdentifier = "payment"
)
