package ctap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ctap/fido2-authenticator/pkg/cbor"
	"github.com/go-ctap/fido2-authenticator/pkg/ctap"
	"github.com/go-ctap/fido2-authenticator/pkg/ctaptypes"
)

func TestAuthenticator_GetInfoDefaults(t *testing.T) {
	a := ctap.New()

	resp := a.CBOR([]byte{byte(ctaptypes.AuthenticatorGetInfo)})
	require.NotEmpty(t, resp)
	require.Equal(t, byte(0x00), resp[0])

	val, err := cbor.DecodeAll(resp[1:])
	require.NoError(t, err)
	require.True(t, val.IsMap())

	pairs, ok := val.MapPairs()
	require.True(t, ok)

	byKey := make(map[uint64]cbor.Value)
	for _, kv := range pairs {
		u, ok := kv.Key.Uint64()
		require.True(t, ok)
		byKey[u] = kv.Value
	}

	versionsArr, ok := byKey[0x01].Array()
	require.True(t, ok)
	require.Len(t, versionsArr, 1)
	v, _ := versionsArr[0].Text()
	assert.Equal(t, "FIDO_2_1", v)

	aaguid, ok := byKey[0x03].Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}, aaguid)

	options, ok := byKey[0x04].MapPairs()
	require.True(t, ok)
	optByKey := make(map[string]bool)
	for _, kv := range options {
		k, _ := kv.Key.Text()
		b, _ := kv.Value.Bool()
		optByKey[k] = b
	}
	assert.Equal(t, map[string]bool{
		"rk":                             false,
		"up":                             true,
		"plat":                           false,
		"makeCredUvNotRqd":               false,
		"noMcGaPermissionsWithClientPin": false,
	}, optByKey)

	transports, ok := byKey[0x09].Array()
	require.True(t, ok)
	require.Len(t, transports, 1)
	tr, _ := transports[0].Text()
	assert.Equal(t, "usb", tr)

	algorithms, ok := byKey[0x0A].Array()
	require.True(t, ok)
	require.Len(t, algorithms, 1)
	algPairs, ok := algorithms[0].MapPairs()
	require.True(t, ok)
	algByKey := make(map[string]cbor.Value)
	for _, kv := range algPairs {
		k, _ := kv.Key.Text()
		algByKey[k] = kv.Value
	}
	algVal, err := algByKey["alg"].Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), algVal)
	typeVal, _ := algByKey["type"].Text()
	assert.Equal(t, "public-key", typeVal)

	_, hasExtensions := byKey[0x02]
	assert.False(t, hasExtensions)
	_, hasMaxMsgSize := byKey[0x05]
	assert.False(t, hasMaxMsgSize)
	_, hasAttestationFormats := byKey[0x16]
	assert.False(t, hasAttestationFormats)
}

func TestAuthenticator_EmptyRequestIsInvalidLength(t *testing.T) {
	a := ctap.New()
	resp := a.CBOR(nil)
	assert.Equal(t, []byte{byte(ctap.CTAP1_ERR_INVALID_LENGTH)}, resp)
}

func TestAuthenticator_UnknownCommandIsInvalid(t *testing.T) {
	a := ctap.New()
	resp := a.CBOR([]byte{0xEE})
	assert.Equal(t, []byte{byte(ctap.CTAP1_ERR_INVALID_COMMAND)}, resp)
}

func TestAuthenticator_InvalidCBORArgument(t *testing.T) {
	a := ctap.New()
	resp := a.CBOR([]byte{byte(ctaptypes.AuthenticatorReset), 0xFF})
	assert.Equal(t, []byte{byte(ctap.CTAP2_ERR_INVALID_CBOR)}, resp)
}

func TestAuthenticator_RegisteredHandlerIsInvokedWithDecodedArgument(t *testing.T) {
	var got cbor.Value
	h := ctap.HandlerFunc(func(argument cbor.Value) []byte {
		got = argument
		return []byte{0x00}
	})

	a := ctap.New(ctap.WithHandler(ctaptypes.AuthenticatorReset, h))

	argBytes, err := cbor.Encode(cbor.Map([]cbor.KV{{Key: cbor.Text("k"), Value: cbor.Bool(true)}}))
	require.NoError(t, err)

	resp := a.CBOR(append([]byte{byte(ctaptypes.AuthenticatorReset)}, argBytes...))
	assert.Equal(t, []byte{0x00}, resp)

	v, ok := got.MapLookup("k")
	require.True(t, ok)
	b, _ := v.Bool()
	assert.True(t, b)
}
