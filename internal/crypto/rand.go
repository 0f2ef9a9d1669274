package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
)

// ErrEntropy indicates the secure RNG is unavailable. Key generation must
// abort on it; there is no weaker source to fall back to.
var ErrEntropy = errors.New("secure random source unavailable")

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return b, nil
}

// ConstantTimeEqual reports whether a and b are byte-equal in a
// data-independent number of operations. Mismatched lengths return false
// immediately; lengths are public format information.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
