// Package store persists the identity and conversation snapshots between
// CLI runs. Everything secret goes through one envelope: Argon2id over
// the passphrase, ChaCha20-Poly1305 over the payload, salt as associated
// data, written atomically via temp file and rename.
package store
