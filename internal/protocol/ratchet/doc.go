// Package ratchet implements a Double Ratchet session in the style of
// Signal's design.
//
// A root key feeds two KDF chains (send and receive). Every message
// derives a one-use message key and advances its chain, giving forward
// secrecy. A DH ratchet step mixes a fresh X25519 exchange into the root
// key, giving post-compromise security.
//
// Two deliberate deviations from the full Double Ratchet:
//
//   - Delivery must be strictly in order. The receiving chain advances
//     unconditionally and no skipped message keys are retained, so a
//     dropped or reordered message breaks the chain. The wire format
//     carries no message counter, so a skipped-key cache could not even
//     index its entries.
//   - DH ratchet steps are explicit (DHRatchet), driven by the caller
//     exchanging ratchet public keys out of band, rather than triggered
//     by message headers.
//
// Concurrency: Session is NOT safe for concurrent use. Callers must
// serialise access per session; the engine package does this.
package ratchet
