package interfaces

import domaintypes "cryptalk/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
}

// SessionEngine is the surface the transport and UI layers consume. It
// hides all ratchet state behind opaque session identifiers.
type SessionEngine interface {
	GenerateIdentityKeyPair() (domaintypes.IdentityKeyPair, error)
	GenerateKeyPair() (domaintypes.KeyPair, error)
	InitializeSession(
		sharedSecret []byte,
		ourRatchetKeyPair domaintypes.KeyPair,
		theirRatchetPublicKey *domaintypes.X25519Public,
	) (domaintypes.SessionID, error)
	EncryptMessage(id domaintypes.SessionID, plaintext string) (domaintypes.EncryptedMessage, error)
	DecryptMessage(id domaintypes.SessionID, message domaintypes.EncryptedMessage) (string, error)
	PerformDHRatchet(id domaintypes.SessionID, theirNewRatchetPublicKey domaintypes.X25519Public) error
	ClearSession(id domaintypes.SessionID)
	EmergencyPanic()
}
