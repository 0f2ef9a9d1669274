package types

// RatchetSnapshot is the explicit export/restore form of a ratchet
// session's state, used only by the encrypted conversation store. It
// contains live key material; treat it like the secrets it carries and
// wipe it after use.
type RatchetSnapshot struct {
	RootKey             [32]byte      `json:"root_key"`
	SendingChainKey     [32]byte      `json:"sending_chain_key"`
	ReceivingChainKey   [32]byte      `json:"receiving_chain_key"`
	SendingRatchetKey   KeyPair       `json:"sending_ratchet_key"`
	ReceivingRatchetKey *X25519Public `json:"receiving_ratchet_key,omitempty"`
	MessageNumber       uint32        `json:"message_number"`
	PreviousChainLength uint32        `json:"previous_chain_length"`
}

// Conversation persists a ratchet snapshot under its session identifier.
type Conversation struct {
	Session SessionID       `json:"session"`
	State   RatchetSnapshot `json:"state"`
}
