package ratchet

import (
	"errors"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
	"cryptalk/internal/util/memzero"
)

var (
	// ErrSessionCleared is returned for any operation on a cleared session.
	// Cleared is terminal; the caller must establish a new session.
	ErrSessionCleared = errors.New("session has been cleared")

	// ErrChainNotReady is returned when the required chain key is still the
	// all-zero placeholder. A responder must complete a DH ratchet step
	// before its first send; a sender-side session cannot decrypt until a
	// receiving chain exists.
	ErrChainNotReady = errors.New("ratchet chain key is uninitialised")

	// ErrMacVerification is returned when the outer integrity tag does not
	// match. The message was tampered with or corrupted in transit.
	ErrMacVerification = errors.New("message integrity check failed")
)

// oneZeroByte is the fixed salt for symmetric chain steps.
var oneZeroByte = []byte{0x00}

// Session is the Double Ratchet state for one conversation.
//
// All secret fields stay inside the Session; the only way they leave is an
// explicit Snapshot for the encrypted conversation store. Session is not
// safe for concurrent use. Callers must serialise access per session.
type Session struct {
	rootKey           [32]byte
	sendingChainKey   [32]byte
	receivingChainKey [32]byte

	sendingRatchetKey   domain.KeyPair
	receivingRatchetKey *domain.X25519Public

	messageNumber       uint32
	previousChainLength uint32

	cleared bool
}

// Initialize derives a fresh session from a shared secret.
//
// The bootstrap is asymmetric: the initiator (no peer ratchet key yet)
// seeds its sending chain, the responder (given the initiator's ratchet
// public key) seeds its receiving chain and leaves the sending chain as a
// placeholder until its first DH ratchet step. This is the minimal
// two-party bootstrap, not an X3DH handshake.
func Initialize(
	sharedSecret []byte,
	ourRatchetKeyPair domain.KeyPair,
	theirRatchetPublicKey *domain.X25519Public,
) (*Session, error) {
	var zero32 [32]byte

	rk, err := crypto.DeriveKey(sharedSecret, zero32[:], crypto.LabelRootKey, 32)
	if err != nil {
		return nil, err
	}
	defer memzero.Wipe(rk)

	s := &Session{sendingRatchetKey: ourRatchetKeyPair}
	copy(s.rootKey[:], rk)

	// Both roles derive the bootstrap chain key identically; the responder
	// attaches it to its receiving chain, the initiator to its sending
	// chain. A role-dependent derivation here would leave the two sides
	// with unrelated chains and no way to ever converge.
	ck, err := crypto.DeriveKey(rk, zero32[:], crypto.LabelChainKey, 32)
	if err != nil {
		return nil, err
	}
	defer memzero.Wipe(ck)

	if theirRatchetPublicKey != nil {
		// Validate the peer key before accepting the session; a low-order
		// point yields an all-zero DH output and is rejected here.
		dh, err := crypto.DH(ourRatchetKeyPair.Secret, *theirRatchetPublicKey)
		if err != nil {
			return nil, err
		}
		memzero.Wipe(dh[:])

		copy(s.receivingChainKey[:], ck)
		peer := *theirRatchetPublicKey
		s.receivingRatchetKey = &peer
		return s, nil
	}

	copy(s.sendingChainKey[:], ck)
	return s, nil
}

// Encrypt derives a one-use message key from the sending chain, advances
// the chain, and seals the plaintext. The chain advance is unconditional:
// once a message key has been derived it is never derived again, even if
// sealing fails afterwards.
func (s *Session) Encrypt(plaintext []byte) (domain.EncryptedMessage, error) {
	if s.cleared {
		return domain.EncryptedMessage{}, ErrSessionCleared
	}
	if s.sendingChainKey == ([32]byte{}) {
		return domain.EncryptedMessage{}, ErrChainNotReady
	}

	// Per-message ephemeral key. Carried as message metadata only; it does
	// not rotate the chain.
	ephemeral, err := crypto.GenerateX25519()
	if err != nil {
		return domain.EncryptedMessage{}, err
	}
	defer memzero.Wipe(ephemeral.Secret[:])

	mk, err := crypto.DeriveKey(s.sendingChainKey[:], oneZeroByte, crypto.LabelMessageKey, 32)
	if err != nil {
		return domain.EncryptedMessage{}, err
	}
	defer memzero.Wipe(mk)

	next, err := crypto.DeriveKey(s.sendingChainKey[:], oneZeroByte, crypto.LabelChainKeyNext, 32)
	if err != nil {
		return domain.EncryptedMessage{}, err
	}
	copy(s.sendingChainKey[:], next)
	memzero.Wipe(next)
	s.messageNumber++

	ct, nonce, err := crypto.Seal(mk, plaintext)
	if err != nil {
		return domain.EncryptedMessage{}, err
	}

	return domain.EncryptedMessage{
		Ciphertext:         ct,
		Nonce:              nonce,
		EphemeralPublicKey: ephemeral.Public,
		MAC:                crypto.OuterTag(ct, nonce, ephemeral.Public),
	}, nil
}

// Decrypt verifies the outer tag, derives the next receiving message key,
// advances the receiving chain, and opens the ciphertext.
//
// The receiving chain advances unconditionally per call and there is no
// skipped-message key cache: messages must arrive in exact send order. An
// out-of-order or dropped message desynchronises the chain permanently.
func (s *Session) Decrypt(message domain.EncryptedMessage) ([]byte, error) {
	if s.cleared {
		return nil, ErrSessionCleared
	}
	if s.receivingChainKey == ([32]byte{}) {
		return nil, ErrChainNotReady
	}

	expected := crypto.OuterTag(message.Ciphertext, message.Nonce, message.EphemeralPublicKey)
	if !crypto.ConstantTimeEqual(expected[:], message.MAC[:]) {
		return nil, ErrMacVerification
	}

	mk, err := crypto.DeriveKey(s.receivingChainKey[:], oneZeroByte, crypto.LabelMessageKey, 32)
	if err != nil {
		return nil, err
	}
	defer memzero.Wipe(mk)

	next, err := crypto.DeriveKey(s.receivingChainKey[:], oneZeroByte, crypto.LabelChainKeyNext, 32)
	if err != nil {
		return nil, err
	}
	copy(s.receivingChainKey[:], next)
	memzero.Wipe(next)

	return crypto.Open(mk, message.Ciphertext, message.Nonce)
}

// DHRatchet rotates the root key, sending chain, and ratchet key pair
// using a fresh DH exchange with the peer's new ratchet public key. After
// this step a compromise of the previous chain keys no longer exposes
// future messages.
func (s *Session) DHRatchet(theirNewRatchetPublicKey domain.X25519Public) error {
	if s.cleared {
		return ErrSessionCleared
	}

	newPair, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	dh, err := crypto.DH(newPair.Secret, theirNewRatchetPublicKey)
	if err != nil {
		memzero.Wipe(newPair.Secret[:])
		return err
	}

	newRoot, err := crypto.DeriveKey(s.rootKey[:], dh[:], crypto.LabelRootKeyNext, 32)
	memzero.Wipe(dh[:])
	if err != nil {
		memzero.Wipe(newPair.Secret[:])
		return err
	}
	defer memzero.Wipe(newRoot)

	var zero32 [32]byte
	newSending, err := crypto.DeriveKey(newRoot, zero32[:], crypto.LabelChainKey, 32)
	if err != nil {
		memzero.Wipe(newPair.Secret[:])
		return err
	}
	defer memzero.Wipe(newSending)

	memzero.Wipe(s.sendingRatchetKey.Secret[:])
	memzero.Wipe(s.rootKey[:])
	memzero.Wipe(s.sendingChainKey[:])

	copy(s.rootKey[:], newRoot)
	copy(s.sendingChainKey[:], newSending)
	s.sendingRatchetKey = newPair

	peer := theirNewRatchetPublicKey
	s.receivingRatchetKey = &peer

	s.previousChainLength = s.messageNumber
	s.messageNumber = 0
	return nil
}

// Clear wipes every secret field and marks the session terminal. It is
// idempotent.
func (s *Session) Clear() {
	if s.cleared {
		return
	}
	memzero.Wipe(s.rootKey[:])
	memzero.Wipe(s.sendingChainKey[:])
	memzero.Wipe(s.receivingChainKey[:])
	memzero.Wipe(s.sendingRatchetKey.Secret[:])
	if s.receivingRatchetKey != nil {
		memzero.Wipe(s.receivingRatchetKey[:])
		s.receivingRatchetKey = nil
	}
	s.messageNumber = 0
	s.previousChainLength = 0
	s.cleared = true
}

// Cleared reports whether Clear has run.
func (s *Session) Cleared() bool { return s.cleared }

// RatchetPublicKey returns our current sending ratchet public key, which
// the peer needs for its next DH ratchet step.
func (s *Session) RatchetPublicKey() domain.X25519Public {
	return s.sendingRatchetKey.Public
}
