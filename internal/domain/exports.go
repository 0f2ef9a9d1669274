package domain

import (
	interfaces "cryptalk/internal/domain/interfaces"
	types "cryptalk/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID        = types.SessionID
	Fingerprint      = types.Fingerprint
	Identity         = types.Identity
	KeyPair          = types.KeyPair
	IdentityKeyPair  = types.IdentityKeyPair
	EncryptedMessage = types.EncryptedMessage
	RatchetSnapshot  = types.RatchetSnapshot
	Conversation     = types.Conversation
	X25519Public     = types.X25519Public
	X25519Private    = types.X25519Private
	Ed25519Public    = types.Ed25519Public
	Ed25519Private   = types.Ed25519Private
)

// Size constants shared across the wire format.
const (
	NonceSize = types.NonceSize
	TagSize   = types.TagSize
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService   = interfaces.IdentityService
	SessionEngine     = interfaces.SessionEngine
	IdentityStore     = interfaces.IdentityStore
	ConversationStore = interfaces.ConversationStore
)
