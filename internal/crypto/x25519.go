package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"cryptalk/internal/domain"
)

// ErrInvalidPublicKey indicates the peer public key is a low-order or
// otherwise invalid point. The handshake must be rejected.
var ErrInvalidPublicKey = errors.New("invalid or low-order public key")

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519() (domain.KeyPair, error) {
	var kp domain.KeyPair
	if _, err := rand.Read(kp.Secret[:]); err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	clamp(&kp.Secret)
	pub, err := curve25519.X25519(kp.Secret.Slice(), curve25519.Basepoint)
	if err != nil {
		return domain.KeyPair{}, err
	}
	copy(kp.Public[:], pub)
	return kp, nil
}

// DH computes the X25519 shared secret between our private key and the
// peer's public key. curve25519.X25519 errors on an all-zero output, which
// rejects low-order (small subgroup) peer keys per RFC 7748 section 6.1.
func DH(priv domain.X25519Private, pub domain.X25519Public) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	copy(out[:], secret)
	return out, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
