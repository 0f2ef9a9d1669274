package wire_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"cryptalk/internal/domain"
	"cryptalk/internal/wire"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := domain.EncryptedMessage{Ciphertext: []byte("ct bytes")}
	msg.Nonce[0] = 7
	msg.EphemeralPublicKey[31] = 9
	msg.MAC[15] = 3

	data, err := wire.NewMessage(msg).Encode()
	require.NoError(t, err)

	env, err := wire.Decode(data)
	require.NoError(t, err)
	require.Equal(t, wire.KindMessage, env.Kind)
	require.NotNil(t, env.Message)
	require.Equal(t, msg, *env.Message)
}

func TestDummyRoundTrip(t *testing.T) {
	env, err := wire.NewDummy(48)
	require.NoError(t, err)
	require.Len(t, env.Padding, 48)

	data, err := env.Encode()
	require.NoError(t, err)

	got, err := wire.Decode(data)
	require.NoError(t, err)
	require.Equal(t, wire.KindDummy, got.Kind)
	require.Equal(t, env.Padding, got.Padding)
	require.Nil(t, got.Message)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := wire.Decode([]byte{0xFF, 0x00, 0x13})
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestDecodeRejectsBadFieldLengths(t *testing.T) {
	// Hand-built message envelope with a truncated nonce.
	raw, err := cbor.Marshal(map[int]any{
		1: 1, // KindMessage
		2: []byte("ct"),
		3: []byte{0x01, 0x02}, // nonce too short
		4: make([]byte, 32),
		5: make([]byte, 16),
	})
	require.NoError(t, err)

	_, err = wire.Decode(raw)
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	raw, err := cbor.Marshal(map[int]any{1: 99})
	require.NoError(t, err)

	_, err = wire.Decode(raw)
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestEncodeRejectsEmptyMessage(t *testing.T) {
	env := wire.Envelope{Kind: wire.KindMessage}
	_, err := env.Encode()
	require.ErrorIs(t, err, wire.ErrMalformed)
}
