package types

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// KeyPair is an X25519 key pair used for Diffie-Hellman ratcheting.
// Whoever generated it owns the secret until it is handed to a ratchet
// session, which then owns the copy used for ratcheting.
type KeyPair struct {
	Public X25519Public  `json:"public"`
	Secret X25519Private `json:"secret"`
}

// IdentityKeyPair is a long-lived Ed25519 signing key pair used as a
// stable peer identity, distinct from per-session X25519 keys.
type IdentityKeyPair struct {
	Public Ed25519Public  `json:"public"`
	Secret Ed25519Private `json:"secret"`
}
