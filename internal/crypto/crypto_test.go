package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
)

func TestGenerateX25519(t *testing.T) {
	kp, err := crypto.GenerateX25519()
	require.NoError(t, err)
	require.NotEqual(t, domain.X25519Public{}, kp.Public)

	// Clamping per RFC 7748.
	require.Zero(t, kp.Secret[0]&7)
	require.Zero(t, kp.Secret[31]&128)
	require.EqualValues(t, 64, kp.Secret[31]&64)
}

func TestDHAgreement(t *testing.T) {
	a, err := crypto.GenerateX25519()
	require.NoError(t, err)
	b, err := crypto.GenerateX25519()
	require.NoError(t, err)

	ab, err := crypto.DH(a.Secret, b.Public)
	require.NoError(t, err)
	ba, err := crypto.DH(b.Secret, a.Public)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
	require.NotEqual(t, [32]byte{}, ab)
}

func TestDHRejectsLowOrderPoint(t *testing.T) {
	kp, err := crypto.GenerateX25519()
	require.NoError(t, err)

	// The identity element is the canonical low-order point; the shared
	// secret would be all zero.
	var zero domain.X25519Public
	_, err = crypto.DH(kp.Secret, zero)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestDHNeverAllZeroPairwise(t *testing.T) {
	const n = 1000
	pairs := make([]domain.KeyPair, n)
	for i := range pairs {
		kp, err := crypto.GenerateX25519()
		require.NoError(t, err)
		pairs[i] = kp
	}
	for i := 0; i < n-1; i++ {
		out, err := crypto.DH(pairs[i].Secret, pairs[i+1].Public)
		require.NoError(t, err)
		require.NotEqual(t, [32]byte{}, out)
	}
}

func TestGenerateEd25519(t *testing.T) {
	kp, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	msg := []byte("attest")
	sig := crypto.SignEd25519(kp.Secret, msg)
	require.True(t, crypto.VerifyEd25519(kp.Public, msg, sig))
	require.False(t, crypto.VerifyEd25519(kp.Public, []byte("other"), sig))
}

func TestConstantTimeEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"both empty", nil, nil, true},
		{"empty vs non-empty", nil, []byte{1}, false},
		{"equal", []byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{"first byte differs", []byte{0, 2, 3}, []byte{1, 2, 3}, false},
		{"last byte differs", []byte{1, 2, 3}, []byte{1, 2, 4}, false},
		{"length mismatch", []byte{1, 2, 3}, []byte{1, 2}, false},
		{"single equal", []byte{7}, []byte{7}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, crypto.ConstantTimeEqual(tc.a, tc.b))
		})
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := crypto.RandomBytes(32)
	require.NoError(t, err)
	require.Len(t, a, 32)
	b, err := crypto.RandomBytes(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
