package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ProtocolVersion is baked into every derivation's info string so keys
// from different protocol revisions are cryptographically unrelated.
const ProtocolVersion = 1

// Purpose labels for key derivation. The ratchet uses only these fixed
// labels; ad hoc labels would make the key schedule unauditable.
const (
	LabelRootKey      = "RootKey"
	LabelChainKey     = "ChainKey"
	LabelChainKeyNext = "ChainKeyNext"
	LabelMessageKey   = "MessageKey"
	LabelRootKeyNext  = "RootKeyNext"
)

// maxDeriveLen is the HKDF-SHA256 expansion limit (255 blocks).
const maxDeriveLen = 255 * sha256.Size

// ErrDerivation indicates a requested output length beyond the safe HKDF
// expansion limit. With the fixed labels above this is a programming error.
var ErrDerivation = errors.New("derived key length exceeds HKDF limit")

// DeriveKey derives length bytes from inputKeyMaterial and salt using
// HKDF-SHA256 with a versioned, purpose-labelled info string. Same inputs
// always yield the same output; the ratchet's key schedule depends on it.
func DeriveKey(inputKeyMaterial, salt []byte, purpose string, length int) ([]byte, error) {
	return DeriveKeyVersioned(inputKeyMaterial, salt, purpose, length, ProtocolVersion)
}

// DeriveKeyVersioned is DeriveKey with an explicit protocol version.
func DeriveKeyVersioned(inputKeyMaterial, salt []byte, purpose string, length, version int) ([]byte, error) {
	if length > maxDeriveLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrDerivation, length, maxDeriveLen)
	}
	info := fmt.Sprintf("cryptalk-v%d-%s", version, purpose)
	r := hkdf.New(sha256.New, inputKeyMaterial, salt, []byte(info))
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
