package ctaphid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ctap/fido2-authenticator/pkg/clock"
	"github.com/go-ctap/fido2-authenticator/pkg/ctaphid"
)

func pad64(b []byte) []byte {
	out := make([]byte, 64)
	copy(out, b)
	return out
}

func TestFramer_ChannelAllocation(t *testing.T) {
	newCID := ctaphid.ChannelID{0xAA, 0xBB, 0xCC, 0xDD}
	rng := ctaphid.NewScriptedChannelIDGenerator(newCID)
	f := ctaphid.NewFramer(ctaphid.WithChannelIDGenerator(rng))

	packet := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, // broadcast cid
		0x86,       // INIT with high bit
		0x00, 0x08, // bcnt = 8
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})

	msg := f.Handle(packet)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_INIT, msg.Cmd)
	assert.Equal(t, ctaphid.ChannelID{0xFF, 0xFF, 0xFF, 0xFF}, msg.CID)
	require.Len(t, msg.Payload, 17)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, msg.Payload[0:8])
	assert.Equal(t, newCID[:], msg.Payload[8:12])
	assert.Equal(t, byte(0x02), msg.Payload[12])
	assert.Equal(t, []byte{0xCA, 0xFE, 0x01}, msg.Payload[13:16])
	assert.Equal(t, byte(0x0D), msg.Payload[16])
	assert.True(t, f.IsValid(newCID))
}

func TestFramer_InvalidChannelRejection(t *testing.T) {
	f := ctaphid.NewFramer()

	packet := pad64([]byte{
		0xFF, 0xFF, 0xFE, 0xFF,
		0x86,
		0x00, 0x00,
	})

	msg := f.Handle(packet)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_ERROR, msg.Cmd)
	assert.Equal(t, []byte{0x0B}, msg.Payload)
}

func TestFramer_BroadcastRestrictedToInit(t *testing.T) {
	f := ctaphid.NewFramer()

	packet := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, // broadcast cid
		0x90, // CBOR with high bit
		0x00, 0x00,
	})

	msg := f.Handle(packet)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_ERROR, msg.Cmd)
	assert.Equal(t, []byte{0x0B}, msg.Payload)
}

func TestFramer_CborPayloadOverAllocatedChannel(t *testing.T) {
	newCID := ctaphid.ChannelID{0xAA, 0xBB, 0xCC, 0xDD}
	rng := ctaphid.NewScriptedChannelIDGenerator(newCID)
	f := ctaphid.NewFramer(ctaphid.WithChannelIDGenerator(rng))

	init := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x86,
		0x00, 0x08,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})
	require.NotNil(t, f.Handle(init))

	packet := pad64(append([]byte{
		newCID[0], newCID[1], newCID[2], newCID[3],
		0x90,
		0x00, 0x01,
	}, 0x04))

	msg := f.Handle(packet)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_CBOR, msg.Cmd)
	assert.Equal(t, newCID, msg.CID)
	assert.Equal(t, []byte{0x04}, msg.Payload)
}

func TestFramer_SplitterExactFit(t *testing.T) {
	f := ctaphid.NewFramer()
	cid := ctaphid.ChannelID{0x11, 0x22, 0x33, 0x44}
	payload := make([]byte, 57)
	for i := range payload {
		payload[i] = 'a'
	}

	packets, err := f.Emit(ctaphid.CTAPHID_INIT, cid, payload)
	require.NoError(t, err)
	require.Len(t, packets, 1)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x86, 0x00, 0x39}, packets[0][0:7])
	assert.Equal(t, payload, packets[0][7:64])
}

func TestFramer_SplitterMultiPacket(t *testing.T) {
	f := ctaphid.NewFramer()
	cid := ctaphid.ChannelID{0xCA, 0xFE, 0xBA, 0xBE}
	payload := make([]byte, 0, 74)
	for i := 0; i < 57; i++ {
		payload = append(payload, 'a')
	}
	for i := 0; i < 17; i++ {
		payload = append(payload, 'b')
	}

	packets, err := f.Emit(ctaphid.CTAPHID_CBOR, cid, payload)
	require.NoError(t, err)
	require.Len(t, packets, 2)

	assert.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x90, 0x00, 0x4A}, packets[0][0:7])
	assert.Equal(t, payload[0:57], packets[0][7:64])

	assert.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00}, packets[1][0:5])
	assert.Equal(t, payload[57:74], packets[1][5:22])
	assert.Equal(t, make([]byte, 42), packets[1][22:64])
}

func TestFramer_SplitterEmptyPayload(t *testing.T) {
	f := ctaphid.NewFramer()
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}

	packets, err := f.Emit(ctaphid.CTAPHID_PING, cid, nil)
	require.NoError(t, err)
	require.Len(t, packets, 1)
	assert.Len(t, packets[0], 64)
	assert.Equal(t, byte(0x00), packets[0][5])
	assert.Equal(t, byte(0x00), packets[0][6])
}

func TestFramer_SplitterRejectsOversizedPayload(t *testing.T) {
	f := ctaphid.NewFramer()
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}

	_, err := f.Emit(ctaphid.CTAPHID_CBOR, cid, make([]byte, 0x10000))
	assert.ErrorIs(t, err, ctaphid.ErrMessageTooLarge)
}

func TestFramer_SplitterRejectsPayloadPastSeqByteRange(t *testing.T) {
	f := ctaphid.NewFramer()
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}

	// 57 + 128*59 is the largest payload addressable by a 7-bit
	// continuation sequence number; one byte past it must be rejected
	// rather than emit a 129th continuation packet whose seq byte (0x80)
	// would collide with INIT_PACKET_BIT.
	const maxPayload = 57 + 128*59

	packets, err := f.Emit(ctaphid.CTAPHID_CBOR, cid, make([]byte, maxPayload))
	require.NoError(t, err)
	assert.Len(t, packets, 1+128)

	_, err = f.Emit(ctaphid.CTAPHID_CBOR, cid, make([]byte, maxPayload+1))
	assert.ErrorIs(t, err, ctaphid.ErrMessageTooLarge)
}

func TestFramer_SplitterInvertsFramer(t *testing.T) {
	cid := ctaphid.ChannelID{0x10, 0x20, 0x30, 0x40}
	sender := ctaphid.NewFramer()

	payload := make([]byte, 130)
	for i := range payload {
		payload[i] = byte(i)
	}

	packets, err := sender.Emit(ctaphid.CTAPHID_CBOR, cid, payload)
	require.NoError(t, err)

	receiver := ctaphid.NewFramer(ctaphid.WithChannelIDGenerator(ctaphid.NewScriptedChannelIDGenerator(cid)))
	initPacket := pad64([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x86, 0x00, 0x08})
	require.NotNil(t, receiver.Handle(initPacket))

	var got *ctaphid.Message
	for _, p := range packets {
		got = receiver.Handle(p)
	}
	require.NotNil(t, got)
	assert.Equal(t, ctaphid.CTAPHID_CBOR, got.Cmd)
	assert.Equal(t, cid, got.CID)
	assert.Equal(t, payload, got.Payload)
}

func TestFramer_TimeoutReset(t *testing.T) {
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}
	rng := ctaphid.NewScriptedChannelIDGenerator(cid)
	mock := clock.NewMock(time.Unix(0, 0))
	f := ctaphid.NewFramer(ctaphid.WithClock(mock), ctaphid.WithChannelIDGenerator(rng))

	alloc := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x86,
		0x00, 0x08,
		1, 2, 3, 4, 5, 6, 7, 8,
	})
	require.NotNil(t, f.Handle(alloc))

	first := pad64([]byte{cid[0], cid[1], cid[2], cid[3], 0x90, 0x00, 0x80, 0xAA})
	require.Nil(t, f.Handle(first))

	mock.Advance(251 * time.Millisecond)

	// A fresh INIT packet on the same channel, arriving after the assembly
	// in progress has timed out, is processed as a new message rather than
	// rejected as a misplaced continuation of the abandoned one.
	second := pad64([]byte{cid[0], cid[1], cid[2], cid[3], 0x86, 0x00, 0x08, 1, 2, 3, 4, 5, 6, 7, 8})
	msg := f.Handle(second)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_INIT, msg.Cmd)
	assert.Equal(t, cid, msg.CID)
	resp, ok := ctaphid.UnmarshalInitResponse(msg.Payload)
	require.True(t, ok)
	assert.Equal(t, cid, resp.CID)
}

func TestFramer_InvalidSequenceResetsState(t *testing.T) {
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}
	rng := ctaphid.NewScriptedChannelIDGenerator(cid)
	f := ctaphid.NewFramer(ctaphid.WithChannelIDGenerator(rng))

	alloc := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x86,
		0x00, 0x08,
		1, 2, 3, 4, 5, 6, 7, 8,
	})
	require.NotNil(t, f.Handle(alloc))

	first := pad64([]byte{cid[0], cid[1], cid[2], cid[3], 0x90, 0x00, 0x80, 0xAA})
	require.Nil(t, f.Handle(first))

	bad := pad64([]byte{cid[0], cid[1], cid[2], cid[3], 0x02, 0xBB})
	msg := f.Handle(bad)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_ERROR, msg.Cmd)
	assert.Equal(t, []byte{0x04}, msg.Payload)
}

func TestFramer_OvershootIsRejectedAsInvalidLength(t *testing.T) {
	cid := ctaphid.ChannelID{0x01, 0x02, 0x03, 0x04}
	rng := ctaphid.NewScriptedChannelIDGenerator(cid)
	f := ctaphid.NewFramer(ctaphid.WithChannelIDGenerator(rng))

	alloc := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x86,
		0x00, 0x08,
		1, 2, 3, 4, 5, 6, 7, 8,
	})
	require.NotNil(t, f.Handle(alloc))

	// bcnt = 58: the initialization packet carries 57 payload bytes, so one
	// byte is still owed.
	first := pad64([]byte{cid[0], cid[1], cid[2], cid[3], 0x90, 0x00, 0x3A, 0xAA})
	require.Nil(t, f.Handle(first))

	// The continuation carries 59 bytes; only the first completes bcnt, the
	// rest (0xCC and the zero padding) is dropped.
	last := pad64(append([]byte{cid[0], cid[1], cid[2], cid[3], 0x00}, 0xBB, 0xCC))
	msg := f.Handle(last)
	require.NotNil(t, msg)
	assert.Equal(t, ctaphid.CTAPHID_CBOR, msg.Cmd)
	want := make([]byte, 58)
	want[0], want[57] = 0xAA, 0xBB
	assert.Equal(t, want, msg.Payload)
}
