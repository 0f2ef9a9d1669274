package types

// NonceSize is the ChaCha20-Poly1305 nonce length in bytes.
const NonceSize = 12

// TagSize is the length of the truncated outer integrity tag in bytes.
const TagSize = 16

// EncryptedMessage is the immutable value produced by encrypting one
// plaintext. None of its fields are long-lived secrets; once sent they
// are public wire material.
type EncryptedMessage struct {
	Ciphertext         []byte          `json:"ciphertext"`
	Nonce              [NonceSize]byte `json:"nonce"`
	EphemeralPublicKey X25519Public    `json:"ephemeral_public_key"`
	MAC                [TagSize]byte   `json:"mac"`
}
