package ctap

import "github.com/go-ctap/fido2-authenticator/pkg/cbor"

// encodeGetInfo builds the authenticatorGetInfo CBOR map, keys 0x01 through
// 0x18, present only when the corresponding settings field is populated.
// Canonical key ordering is the codec's job, not this function's.
func encodeGetInfo(s Settings) cbor.Value {
	var kvs []cbor.KV

	put := func(key uint64, v cbor.Value) {
		kvs = append(kvs, cbor.KV{Key: cbor.Uint(key), Value: v})
	}

	if len(s.Versions) > 0 {
		elems := make([]cbor.Value, len(s.Versions))
		for i, v := range s.Versions {
			elems[i] = cbor.Text(string(v))
		}
		put(0x01, cbor.Array(elems))
	}
	if len(s.Extensions) > 0 {
		elems := make([]cbor.Value, len(s.Extensions))
		for i, v := range s.Extensions {
			elems[i] = cbor.Text(string(v))
		}
		put(0x02, cbor.Array(elems))
	}
	// aaguid is mandatory per the settings contract, unlike every other
	// field here.
	put(0x03, cbor.Bytes(s.AAGUID[:]))
	if len(s.Options) > 0 {
		optKVs := make([]cbor.KV, 0, len(s.Options))
		for k, v := range s.Options {
			optKVs = append(optKVs, cbor.KV{Key: cbor.Text(string(k)), Value: cbor.Bool(v)})
		}
		put(0x04, cbor.Map(optKVs))
	}
	if s.MaxMsgSize != nil {
		put(0x05, cbor.Uint(*s.MaxMsgSize))
	}
	if len(s.PinUvAuthProtocols) > 0 {
		elems := make([]cbor.Value, len(s.PinUvAuthProtocols))
		for i, v := range s.PinUvAuthProtocols {
			elems[i] = cbor.Uint(uint64(v))
		}
		put(0x06, cbor.Array(elems))
	}
	if s.MaxCredentialCountInList != nil {
		put(0x07, cbor.Uint(*s.MaxCredentialCountInList))
	}
	if s.MaxCredentialIDLength != nil {
		put(0x08, cbor.Uint(*s.MaxCredentialIDLength))
	}
	if len(s.Transports) > 0 {
		elems := make([]cbor.Value, len(s.Transports))
		for i, v := range s.Transports {
			elems[i] = cbor.Text(string(v))
		}
		put(0x09, cbor.Array(elems))
	}
	if len(s.Algorithms) > 0 {
		elems := make([]cbor.Value, len(s.Algorithms))
		for i, a := range s.Algorithms {
			elems[i] = cbor.Map([]cbor.KV{
				{Key: cbor.Text("alg"), Value: cbor.Int(int64(a.Alg))},
				{Key: cbor.Text("type"), Value: cbor.Text(string(a.Type))},
			})
		}
		put(0x0A, cbor.Array(elems))
	}
	if s.MaxSerializedLargeBlobArray != nil {
		put(0x0B, cbor.Uint(*s.MaxSerializedLargeBlobArray))
	}
	if s.ForcePINChange != nil {
		put(0x0C, cbor.Bool(*s.ForcePINChange))
	}
	if s.MinPINLength != nil {
		put(0x0D, cbor.Uint(*s.MinPINLength))
	}
	if s.FirmwareVersion != nil {
		put(0x0E, cbor.Uint(*s.FirmwareVersion))
	}
	if s.MaxCredBlobLength != nil {
		put(0x0F, cbor.Uint(*s.MaxCredBlobLength))
	}
	if s.MaxRPIDsForSetMinPINLength != nil {
		put(0x10, cbor.Uint(*s.MaxRPIDsForSetMinPINLength))
	}
	if s.PreferredPlatformUvAttempts != nil {
		put(0x11, cbor.Uint(*s.PreferredPlatformUvAttempts))
	}
	if s.UvModality != nil {
		put(0x12, cbor.Uint(*s.UvModality))
	}
	if len(s.Certifications) > 0 {
		certKVs := make([]cbor.KV, 0, len(s.Certifications))
		for k, v := range s.Certifications {
			certKVs = append(certKVs, cbor.KV{Key: cbor.Text(k), Value: cbor.Int(v)})
		}
		put(0x13, cbor.Map(certKVs))
	}
	if s.RemainingDiscoverableCredentials != nil {
		put(0x14, cbor.Uint(*s.RemainingDiscoverableCredentials))
	}
	if len(s.VendorPrototypeConfigCommands) > 0 {
		elems := make([]cbor.Value, len(s.VendorPrototypeConfigCommands))
		for i, v := range s.VendorPrototypeConfigCommands {
			elems[i] = cbor.Uint(v)
		}
		put(0x15, cbor.Array(elems))
	}
	if len(s.AttestationFormats) > 0 {
		elems := make([]cbor.Value, len(s.AttestationFormats))
		for i, v := range s.AttestationFormats {
			elems[i] = cbor.Text(string(v))
		}
		put(0x16, cbor.Array(elems))
	}
	if s.UvCountSinceLastPinEntry != nil {
		put(0x17, cbor.Uint(*s.UvCountSinceLastPinEntry))
	}
	if s.LongTouchForReset != nil {
		put(0x18, cbor.Bool(*s.LongTouchForReset))
	}

	return cbor.Map(kvs)
}
