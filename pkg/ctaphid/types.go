package ctaphid

// ChannelID represents a CTAP channel ID: exactly 4 octets.
type ChannelID [4]byte

// InitResponse represents the 17-byte CTAPHID_INIT (0x06) response payload.
// https://fidoalliance.org/specs/fido-v2.2-ps-20250228/fido-client-to-authenticator-protocol-v2.2-ps-20250228.html#usb-hid-init
type InitResponse struct {
	Nonce                            []byte
	CID                              ChannelID
	CTAPHIDProtocolVersionIdentifier byte
	MajorDeviceVersion               byte
	MinorDeviceVersion               byte
	BuildDeviceVersion               byte
	CapabilityFlags                  byte
}

func (r *InitResponse) ImplementsWink() bool {
	return r.CapabilityFlags&byte(CAPABILITY_WINK) != 0
}

func (r *InitResponse) ImplementsCBOR() bool {
	return r.CapabilityFlags&byte(CAPABILITY_CBOR) != 0
}

func (r *InitResponse) NotImplementsMSG() bool {
	return r.CapabilityFlags&byte(CAPABILITY_NMSG) != 0
}

// MarshalBinary serializes the INIT response into its 17-byte wire form:
// nonce(8) || cid(4) || protocol version(1) || major(1) || minor(1) ||
// build(1) || capability flags(1).
func (r *InitResponse) MarshalBinary() []byte {
	out := make([]byte, 17)
	copy(out[0:8], r.Nonce)
	copy(out[8:12], r.CID[:])
	out[12] = r.CTAPHIDProtocolVersionIdentifier
	out[13] = r.MajorDeviceVersion
	out[14] = r.MinorDeviceVersion
	out[15] = r.BuildDeviceVersion
	out[16] = r.CapabilityFlags
	return out
}

// UnmarshalInitResponse parses a 17-byte CTAPHID_INIT response payload.
func UnmarshalInitResponse(data []byte) (*InitResponse, bool) {
	if len(data) < 17 {
		return nil, false
	}
	return &InitResponse{
		Nonce:                            append([]byte{}, data[0:8]...),
		CID:                              ChannelID(data[8:12]),
		CTAPHIDProtocolVersionIdentifier: data[12],
		MajorDeviceVersion:               data[13],
		MinorDeviceVersion:               data[14],
		BuildDeviceVersion:               data[15],
		CapabilityFlags:                  data[16],
	}, true
}

