package commands

import (
	"fmt"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
)

// parsePublicKey decodes a base64 X25519 public key argument.
func parsePublicKey(arg string) (domain.X25519Public, error) {
	var pub domain.X25519Public
	raw, err := crypto.FromB64(arg)
	if err != nil {
		return pub, fmt.Errorf("decoding public key: %w", err)
	}
	if len(raw) != len(pub) {
		return pub, fmt.Errorf("public key must be %d bytes, got %d", len(pub), len(raw))
	}
	copy(pub[:], raw)
	return pub, nil
}
