package engine

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
	"cryptalk/internal/protocol/ratchet"
)

// ErrMessageRejected is the only failure external callers see for a
// message that did not verify. Whether the outer tag or the AEAD tag
// failed stays internal so the error channel cannot be used as an oracle.
var ErrMessageRejected = errors.New("message rejected")

// Engine is the session facade consumed by the transport and UI layers.
// All ratchet state lives behind opaque session identifiers; per-session
// operations are serialised by the registry's entry locks, and operations
// on different sessions proceed in parallel.
type Engine struct {
	reg *Registry
	log logrus.FieldLogger
}

// New builds an engine around reg. A nil logger disables logging.
func New(reg *Registry, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{reg: reg, log: log}
}

// GenerateIdentityKeyPair returns a long-lived Ed25519 identity key pair.
func (e *Engine) GenerateIdentityKeyPair() (domain.IdentityKeyPair, error) {
	return crypto.GenerateEd25519()
}

// GenerateKeyPair returns a fresh X25519 ratchet key pair.
func (e *Engine) GenerateKeyPair() (domain.KeyPair, error) {
	return crypto.GenerateX25519()
}

// InitializeSession derives a ratchet session from the shared secret and
// registers it under a fresh unguessable identifier. Passing the peer's
// ratchet public key makes this the responder side of the bootstrap.
func (e *Engine) InitializeSession(
	sharedSecret []byte,
	ourRatchetKeyPair domain.KeyPair,
	theirRatchetPublicKey *domain.X25519Public,
) (domain.SessionID, error) {
	sess, err := ratchet.Initialize(sharedSecret, ourRatchetKeyPair, theirRatchetPublicKey)
	if err != nil {
		return "", err
	}
	id := e.reg.add(sess)
	e.log.WithFields(logrus.Fields{
		"session":   id,
		"responder": theirRatchetPublicKey != nil,
	}).Debug("session initialized")
	return id, nil
}

// RestoreSession registers a session rebuilt from a stored snapshot.
func (e *Engine) RestoreSession(snap domain.RatchetSnapshot) domain.SessionID {
	return e.reg.add(ratchet.FromSnapshot(snap))
}

// SnapshotSession exports a session's state for the encrypted
// conversation store.
func (e *Engine) SnapshotSession(id domain.SessionID) (domain.RatchetSnapshot, error) {
	var snap domain.RatchetSnapshot
	err := e.withSession(id, func(s *ratchet.Session) error {
		var err error
		snap, err = s.Snapshot()
		return err
	})
	return snap, err
}

// RatchetPublicKey returns the session's current sending ratchet public
// key, which the peer needs for its next DH ratchet step.
func (e *Engine) RatchetPublicKey(id domain.SessionID) (domain.X25519Public, error) {
	var pub domain.X25519Public
	err := e.withSession(id, func(s *ratchet.Session) error {
		pub = s.RatchetPublicKey()
		return nil
	})
	return pub, err
}

// EncryptMessage encrypts plaintext on the session's sending chain.
func (e *Engine) EncryptMessage(id domain.SessionID, plaintext string) (domain.EncryptedMessage, error) {
	var msg domain.EncryptedMessage
	err := e.withSession(id, func(s *ratchet.Session) error {
		var err error
		msg, err = s.Encrypt([]byte(plaintext))
		return err
	})
	return msg, err
}

// DecryptMessage decrypts a message on the session's receiving chain. Any
// integrity failure surfaces as ErrMessageRejected.
func (e *Engine) DecryptMessage(id domain.SessionID, message domain.EncryptedMessage) (string, error) {
	var plaintext []byte
	err := e.withSession(id, func(s *ratchet.Session) error {
		var err error
		plaintext, err = s.Decrypt(message)
		return err
	})
	if err != nil {
		if errors.Is(err, ratchet.ErrMacVerification) || errors.Is(err, crypto.ErrAuthentication) {
			e.log.WithField("session", id).Debug("message failed verification")
			return "", ErrMessageRejected
		}
		return "", err
	}
	return string(plaintext), nil
}

// PerformDHRatchet rotates the session's root key, sending chain, and
// ratchet key pair against the peer's new ratchet public key.
func (e *Engine) PerformDHRatchet(id domain.SessionID, theirNewRatchetPublicKey domain.X25519Public) error {
	err := e.withSession(id, func(s *ratchet.Session) error {
		return s.DHRatchet(theirNewRatchetPublicKey)
	})
	if err == nil {
		e.log.WithField("session", id).Debug("dh ratchet step")
	}
	return err
}

// ClearSession wipes and removes one session. Idempotent.
func (e *Engine) ClearSession(id domain.SessionID) {
	e.reg.Clear(id)
	e.log.WithField("session", id).Debug("session cleared")
}

// EmergencyPanic destroys every session. It never fails and is safe to
// call repeatedly.
func (e *Engine) EmergencyPanic() {
	n := e.reg.Len()
	e.reg.PanicClearAll()
	e.log.WithField("sessions", n).Warn("emergency panic: all session key material destroyed")
}

// withSession runs fn with the session locked. Cleared sessions are
// rejected here for callers that raced a concurrent ClearSession.
func (e *Engine) withSession(id domain.SessionID, fn func(*ratchet.Session) error) error {
	entry, err := e.reg.lookup(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.sess.Cleared() {
		return ErrSessionCleared
	}
	return fn(entry.sess)
}

// Compile-time assertion that Engine implements domain.SessionEngine.
var _ domain.SessionEngine = (*Engine)(nil)
