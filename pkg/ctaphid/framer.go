package ctaphid

import (
	"encoding/binary"
	"time"

	"github.com/samber/lo"

	"github.com/go-ctap/fido2-authenticator/pkg/clock"
)

// Message is a completed CTAPHID delivery: a fully reassembled inbound
// message, or the outbound error/INIT response the framer itself
// synthesized in response to one.
type Message struct {
	CID     ChannelID
	Cmd     Command
	Payload []byte
}

// FramerOption configures a Framer at construction.
type FramerOption func(*Framer)

// WithClock injects a clock, for deterministic timeout tests.
func WithClock(c clock.Clock) FramerOption {
	return func(f *Framer) { f.clock = c }
}

// WithChannelIDGenerator injects a channel id generator, for deterministic
// allocation tests.
func WithChannelIDGenerator(g ChannelIDGenerator) FramerOption {
	return func(f *Framer) { f.rng = g }
}

// WithDeviceVersion overrides the major/minor/build bytes reported in the
// CTAPHID_INIT response.
func WithDeviceVersion(major, minor, build byte) FramerOption {
	return func(f *Framer) { f.vmaj, f.vmin, f.build = major, minor, build }
}

// WithCapabilities overrides the capability flags byte reported in the
// CTAPHID_INIT response.
func WithCapabilities(flags byte) FramerOption {
	return func(f *Framer) { f.capabilities = flags }
}

// Framer reassembles inbound 64-byte CTAPHID packets into complete
// messages and splits outbound messages back into 64-byte packets. It is
// stateful and not safe for concurrent use; callers needing concurrent
// access must serialize it externally.
type Framer struct {
	clock clock.Clock
	rng   ChannelIDGenerator

	allocated map[ChannelID]struct{}

	vmaj, vmin, build byte
	capabilities      byte

	assembling bool
	cid        ChannelID
	cmd        Command
	bcnt       uint16
	received   []byte
	haveSeq    bool
	seqLast    byte
	beginTS    time.Time
}

// NewFramer constructs a Framer with no allocated channels, defaulting to
// a real clock and a crypto/rand channel id generator.
func NewFramer(opts ...FramerOption) *Framer {
	f := &Framer{
		clock:        clock.Real{},
		rng:          CryptoRandChannelIDGenerator{},
		allocated:    make(map[ChannelID]struct{}),
		vmaj:         0xCA,
		vmin:         0xFE,
		build:        0x01,
		capabilities: byte(CAPABILITY_WINK) | byte(CAPABILITY_CBOR) | byte(CAPABILITY_NMSG),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsBroadcast reports whether cid is the reserved broadcast channel.
func (f *Framer) IsBroadcast(cid ChannelID) bool {
	return cid == BROADCAST_CID
}

// IsValid reports whether cid is either the broadcast channel or one this
// instance has allocated.
func (f *Framer) IsValid(cid ChannelID) bool {
	return f.IsBroadcast(cid) || f.isAllocated(cid)
}

func (f *Framer) isAllocated(cid ChannelID) bool {
	_, ok := f.allocated[cid]
	return ok
}

// Handle feeds one inbound 64-byte HID packet into the reassembly state
// machine. It returns nil while a message is still assembling, or the
// completed Message once reassembly finishes — which may itself be a
// CTAPHID_ERROR delivery, since framing errors are reported on the wire
// rather than as a Go error.
func (f *Framer) Handle(packet []byte) *Message {
	now := f.clock.Now()
	if f.assembling && now.Sub(f.beginTS) > reassemblyTimeout {
		f.resetState()
	}

	if !f.assembling {
		return f.handleInitPacket(packet, now)
	}
	return f.handleContinuationPacket(packet)
}

func (f *Framer) handleInitPacket(packet []byte, now time.Time) *Message {
	if len(packet) < 7 {
		return f.errorMessage(ERR_OTHER, BROADCAST_CID)
	}
	if packet[4]&INIT_PACKET_BIT == 0 {
		return f.errorMessage(ERR_INVALID_CMD, BROADCAST_CID)
	}

	cid := ChannelID{packet[0], packet[1], packet[2], packet[3]}
	cmd := Command(packet[4] &^ INIT_PACKET_BIT)
	bcnt := binary.BigEndian.Uint16(packet[5:7])

	if !f.IsValid(cid) {
		return f.errorMessage(ERR_INVALID_CHANNEL, cid)
	}

	body := packet[7:]
	if uint16(len(body)) > bcnt {
		body = body[:bcnt]
	}

	f.assembling = true
	f.cid = cid
	f.cmd = cmd
	f.bcnt = bcnt
	f.received = append([]byte{}, body...)
	f.haveSeq = false
	f.beginTS = now

	if uint16(len(f.received)) >= bcnt {
		return f.completeAssembly()
	}
	return nil
}

func (f *Framer) handleContinuationPacket(packet []byte) *Message {
	if len(packet) < 5 {
		return f.errorMessage(ERR_OTHER, f.cid)
	}
	if packet[4]&INIT_PACKET_BIT != 0 {
		return f.errorMessage(ERR_INVALID_CMD, f.cid)
	}

	cid := ChannelID{packet[0], packet[1], packet[2], packet[3]}
	if cid != f.cid {
		return f.errorMessage(ERR_CHANNEL_BUSY, f.cid)
	}

	seq := packet[4]
	if !f.haveSeq {
		if seq != 0 {
			return f.errorMessage(ERR_INVALID_SEQ, f.cid)
		}
	} else if seq != f.seqLast+1 {
		return f.errorMessage(ERR_INVALID_SEQ, f.cid)
	}

	f.received = append(f.received, packet[5:]...)
	f.haveSeq = true
	f.seqLast = seq

	switch {
	case uint16(len(f.received)) > f.bcnt:
		// A continuation that overshoots bcnt is a length error rather
		// than silently truncated.
		return f.errorMessage(ERR_INVALID_LEN, f.cid)
	case uint16(len(f.received)) >= f.bcnt:
		return f.completeAssembly()
	default:
		return nil
	}
}

// completeAssembly finalizes a reassembled message: re-validates the
// channel for non-INIT commands, builds the INIT response when
// applicable, and always resets to Idle before returning.
func (f *Framer) completeAssembly() *Message {
	cid, cmd, received := f.cid, f.cmd, f.received

	if cmd != CTAPHID_INIT && f.IsBroadcast(cid) {
		f.resetState()
		return f.errorMessage(ERR_INVALID_CHANNEL, cid)
	}

	if cmd == CTAPHID_INIT {
		msg := f.buildInitResponse(cid, received)
		f.resetState()
		return msg
	}

	msg := &Message{CID: cid, Cmd: cmd, Payload: append([]byte{}, received...)}
	f.resetState()
	return msg
}

func (f *Framer) buildInitResponse(cid ChannelID, received []byte) *Message {
	nonce := make([]byte, 8)
	copy(nonce, received)

	newCID := cid
	if f.IsBroadcast(cid) {
		generated, err := f.rng.Generate()
		if err != nil {
			return f.errorMessage(ERR_OTHER, cid)
		}
		newCID = generated
		f.allocated[newCID] = struct{}{}
	}

	resp := &InitResponse{
		Nonce:                            nonce,
		CID:                              newCID,
		CTAPHIDProtocolVersionIdentifier: 0x02,
		MajorDeviceVersion:               f.vmaj,
		MinorDeviceVersion:               f.vmin,
		BuildDeviceVersion:               f.build,
		CapabilityFlags:                  f.capabilities,
	}

	return &Message{CID: cid, Cmd: CTAPHID_INIT, Payload: resp.MarshalBinary()}
}

func (f *Framer) resetState() {
	f.assembling = false
	f.received = nil
	f.haveSeq = false
}

// errorMessage centralizes CTAPHID_ERROR construction and resets the
// state machine, so no error path can forget to reset.
func (f *Framer) errorMessage(code Error, cid ChannelID) *Message {
	f.resetState()
	return &Message{CID: cid, Cmd: CTAPHID_ERROR, Payload: []byte{byte(code)}}
}

// maxEmitPayload is the largest payload Emit can split without a
// continuation packet's sequence byte colliding with INIT_PACKET_BIT: one
// 57-byte initialization packet plus the 128 continuation packets
// addressable by a 7-bit sequence number (0..127), each carrying 59 bytes.
const maxEmitPayload = 57 + 128*59

// Emit splits an outbound message into one initialization packet followed
// by zero or more continuation packets, each exactly 64 bytes. It always
// emits at least one packet, even for an empty payload.
func (f *Framer) Emit(cmd Command, cid ChannelID, payload []byte) ([][]byte, error) {
	if len(payload) > maxEmitPayload {
		return nil, ErrMessageTooLarge
	}

	packets := make([][]byte, 0, 1)

	first := make([]byte, 64)
	copy(first[0:4], cid[:])
	first[4] = byte(cmd) | INIT_PACKET_BIT
	binary.BigEndian.PutUint16(first[5:7], uint16(len(payload)))

	head := payload
	if len(head) > 57 {
		head = head[:57]
	}
	copy(first[7:], head)
	packets = append(packets, first)

	rest := payload
	if len(rest) > 57 {
		rest = rest[57:]
	} else {
		rest = nil
	}

	for i, chunk := range lo.Chunk(rest, 59) {
		pkt := make([]byte, 64)
		copy(pkt[0:4], cid[:])
		pkt[4] = byte(i)
		copy(pkt[5:], chunk)
		packets = append(packets, pkt)
	}

	return packets, nil
}
