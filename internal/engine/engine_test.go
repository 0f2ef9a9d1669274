package engine_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"cryptalk/internal/domain"
	"cryptalk/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(engine.NewRegistry(), nil)
}

// newSessionPair initialises Alice sending-first and Bob receiving-first
// over the same shared secret.
func newSessionPair(t *testing.T, e *engine.Engine) (alice, bob domain.SessionID) {
	t.Helper()
	secret := bytes.Repeat([]byte{0x42}, 32)

	ka, err := e.GenerateKeyPair()
	require.NoError(t, err)
	kb, err := e.GenerateKeyPair()
	require.NoError(t, err)

	alice, err = e.InitializeSession(secret, ka, nil)
	require.NoError(t, err)
	bob, err = e.InitializeSession(secret, kb, &ka.Public)
	require.NoError(t, err)
	return alice, bob
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	e := newEngine(t)
	alice, bob := newSessionPair(t, e)

	msg, err := e.EncryptMessage(alice, "hello")
	require.NoError(t, err)
	pt, err := e.DecryptMessage(bob, msg)
	require.NoError(t, err)
	require.Equal(t, "hello", pt)

	msg2, err := e.EncryptMessage(alice, "world")
	require.NoError(t, err)
	require.NotEqual(t, msg.Ciphertext, msg2.Ciphertext)
	pt2, err := e.DecryptMessage(bob, msg2)
	require.NoError(t, err)
	require.Equal(t, "world", pt2)
}

func TestUnknownSession(t *testing.T) {
	e := newEngine(t)

	_, err := e.EncryptMessage("no-such-id", "x")
	require.ErrorIs(t, err, engine.ErrSessionNotFound)

	_, err = e.DecryptMessage("no-such-id", domain.EncryptedMessage{})
	require.ErrorIs(t, err, engine.ErrSessionNotFound)
}

func TestClearedSession(t *testing.T) {
	e := newEngine(t)
	alice, _ := newSessionPair(t, e)

	e.ClearSession(alice)
	e.ClearSession(alice) // idempotent

	_, err := e.EncryptMessage(alice, "x")
	require.ErrorIs(t, err, engine.ErrSessionCleared)
	_, err = e.DecryptMessage(alice, domain.EncryptedMessage{})
	require.ErrorIs(t, err, engine.ErrSessionCleared)
}

func TestTamperedMessageRejected(t *testing.T) {
	e := newEngine(t)
	alice, bob := newSessionPair(t, e)

	msg, err := e.EncryptMessage(alice, "payload")
	require.NoError(t, err)

	msg.Ciphertext[0] ^= 1
	_, err = e.DecryptMessage(bob, msg)
	require.ErrorIs(t, err, engine.ErrMessageRejected)
}

func TestEmergencyPanic(t *testing.T) {
	e := newEngine(t)
	reg := engine.NewRegistry()
	e = engine.New(reg, nil)
	alice, bob := newSessionPair(t, e)

	require.Equal(t, 2, reg.Len())
	e.EmergencyPanic()
	require.Zero(t, reg.Len())

	_, err := e.EncryptMessage(alice, "x")
	require.ErrorIs(t, err, engine.ErrSessionCleared)
	_, err = e.EncryptMessage(bob, "x")
	require.ErrorIs(t, err, engine.ErrSessionCleared)

	// Calling it again on an empty registry is safe.
	e.EmergencyPanic()
}

func TestSessionIDsAreUnique(t *testing.T) {
	e := newEngine(t)
	seen := make(map[domain.SessionID]bool)
	secret := bytes.Repeat([]byte{1}, 32)
	for i := 0; i < 64; i++ {
		kp, err := e.GenerateKeyPair()
		require.NoError(t, err)
		id, err := e.InitializeSession(secret, kp, nil)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate session id")
		seen[id] = true
	}
}

func TestSnapshotRestoreAcrossEngines(t *testing.T) {
	e := newEngine(t)
	alice, bob := newSessionPair(t, e)

	snap, err := e.SnapshotSession(alice)
	require.NoError(t, err)

	other := newEngine(t)
	restored := other.RestoreSession(snap)

	msg, err := other.EncryptMessage(restored, "moved")
	require.NoError(t, err)
	pt, err := e.DecryptMessage(bob, msg)
	require.NoError(t, err)
	require.Equal(t, "moved", pt)
}

func TestConcurrentSessionsIndependent(t *testing.T) {
	e := newEngine(t)

	// Encrypting on many sessions at once must not race: each pair's
	// messages still decrypt in order.
	type pair struct{ alice, bob domain.SessionID }
	pairs := make([]pair, 8)
	for i := range pairs {
		a, b := newSessionPair(t, e)
		pairs[i] = pair{a, b}
	}

	var wg sync.WaitGroup
	for _, p := range pairs {
		wg.Add(1)
		go func(alice, bob domain.SessionID) {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				msg, err := e.EncryptMessage(alice, "ping")
				if err != nil {
					t.Error(err)
					return
				}
				pt, err := e.DecryptMessage(bob, msg)
				if err != nil || pt != "ping" {
					t.Errorf("decrypt: %v %q", err, pt)
					return
				}
			}
		}(p.alice, p.bob)
	}
	wg.Wait()
}

func TestGenerateIdentityKeyPair(t *testing.T) {
	e := newEngine(t)
	a, err := e.GenerateIdentityKeyPair()
	require.NoError(t, err)
	b, err := e.GenerateIdentityKeyPair()
	require.NoError(t, err)
	require.NotEqual(t, a.Public, b.Public)
}
