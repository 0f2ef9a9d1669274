// Package crypto exposes the primitives the session engine is built on.
//
// Contents
//
//   - Secure random bytes and constant-time comparison (RandomBytes,
//     ConstantTimeEqual)
//   - X25519 key generation, clamping and Diffie–Hellman with low-order
//     point rejection (GenerateX25519, DH)
//   - Ed25519 identity key generation, signing and verification
//     (GenerateEd25519, SignEd25519, VerifyEd25519)
//   - Versioned, domain-separated HKDF-SHA256 key derivation with a fixed
//     set of purpose labels (DeriveKey)
//   - ChaCha20-Poly1305 sealing/opening plus the truncated outer tag
//     (Seal, Open, OuterTag)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on memzero.Wipe when practical to reduce lifetime in
// memory.
package crypto
