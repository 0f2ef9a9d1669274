package interfaces

import domaintypes "cryptalk/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	HasIdentity() (bool, error)
}

// ConversationStore keeps encrypted ratchet snapshots between CLI runs.
type ConversationStore interface {
	SaveConversation(passphrase string, conversation domaintypes.Conversation) error
	LoadConversation(passphrase string, id domaintypes.SessionID) (domaintypes.Conversation, bool, error)
	DeleteConversation(id domaintypes.SessionID) error
	ListConversations() ([]domaintypes.SessionID, error)
	DeleteAllConversations() error
}
