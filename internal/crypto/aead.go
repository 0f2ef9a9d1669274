package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptalk/internal/domain"
)

// ErrAuthentication indicates the AEAD tag did not verify: the ciphertext
// was tampered with or the key is wrong. The message must be discarded.
var ErrAuthentication = errors.New("ciphertext authentication failed")

// Seal encrypts plaintext under a 32-byte message key with
// ChaCha20-Poly1305 and a fresh random nonce. Each message key is used for
// exactly one encryption, so nonce reuse under one key cannot occur.
func Seal(key []byte, plaintext []byte) (ciphertext []byte, nonce [domain.NonceSize]byte, err error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nonce, err
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, nonce, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return aead.Seal(nil, nonce[:], plaintext, nil), nonce, nil
}

// Open decrypts and verifies a ciphertext produced by Seal.
func Open(key []byte, ciphertext []byte, nonce [domain.NonceSize]byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce[:], ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

// OuterTag computes the truncated SHA-256 integrity tag carried alongside
// every wire message, over ciphertext, nonce, and the ephemeral public
// key. It is redundant with the AEAD tag and kept for wire compatibility.
func OuterTag(ciphertext []byte, nonce [domain.NonceSize]byte, ephemeral domain.X25519Public) [domain.TagSize]byte {
	h := sha256.New()
	h.Write(ciphertext)
	h.Write(nonce[:])
	h.Write(ephemeral[:])
	var tag [domain.TagSize]byte
	copy(tag[:], h.Sum(nil))
	return tag
}
