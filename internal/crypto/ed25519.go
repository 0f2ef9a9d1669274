package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"cryptalk/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 signing key pair for long-lived
// peer identity, distinct from per-session X25519 keys.
func GenerateEd25519() (domain.IdentityKeyPair, error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	var kp domain.IdentityKeyPair
	copy(kp.Secret[:], sk)
	copy(kp.Public[:], pk)
	return kp, nil
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv domain.Ed25519Private, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
