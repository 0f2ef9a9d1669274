// Package memzero erases sensitive byte slices.
//
// Erasure in a garbage-collected language is best-effort only: the runtime
// may have copied a secret during a stack grow or map rehash, and those
// copies cannot be hunted down and wiped. Callers must ensure no other
// alias of the original bytes survives, and must not put secrets in
// copy-on-write containers. Real guarantees need a language with
// deterministic destruction (zeroize-on-drop in Rust, RAII in C++); the
// residual risk here is accepted and documented rather than papered over.
package memzero

import (
	"crypto/rand"
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Wipe overwrites b with one pass of cryptographically random bytes
// followed by an all-zero pass. If the random pass fails the zero pass
// still runs.
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}
