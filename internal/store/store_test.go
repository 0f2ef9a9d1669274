package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptalk/internal/domain"
	"cryptalk/internal/store"
)

func TestIdentitySaveLoad(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home)

	id := domain.Identity{
		XPub:   domain.X25519Public{1},
		XPriv:  domain.X25519Private{2},
		EdPub:  domain.Ed25519Public{3},
		EdPriv: domain.Ed25519Private{4},
	}
	require.NoError(t, ids.SaveIdentity("correct horse", id))

	got, err := ids.LoadIdentity("correct horse")
	require.NoError(t, err)
	require.Equal(t, id, got)

	ok, err := ids.HasIdentity()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIdentityWrongPassphrase(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home)

	require.NoError(t, ids.SaveIdentity("correct", domain.Identity{XPub: domain.X25519Public{1}}))

	_, err := ids.LoadIdentity("wrong")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestIdentityMissing(t *testing.T) {
	ids := store.NewIdentityFileStore(t.TempDir())

	ok, err := ids.HasIdentity()
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ids.LoadIdentity("any")
	require.ErrorIs(t, err, store.ErrNoIdentity)
}

func TestConversationRoundTrip(t *testing.T) {
	cs := store.NewConversationFileStore(t.TempDir())

	conv := domain.Conversation{
		Session: "11111111-2222-3333-4444-555555555555",
		State: domain.RatchetSnapshot{
			RootKey:         [32]byte{9},
			SendingChainKey: [32]byte{8},
			MessageNumber:   7,
		},
	}
	require.NoError(t, cs.SaveConversation("pass", conv))

	got, ok, err := cs.LoadConversation("pass", conv.Session)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, conv, got)

	ids, err := cs.ListConversations()
	require.NoError(t, err)
	require.Equal(t, []domain.SessionID{conv.Session}, ids)
}

func TestConversationMissing(t *testing.T) {
	cs := store.NewConversationFileStore(t.TempDir())

	_, ok, err := cs.LoadConversation("pass", "absent")
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting an absent snapshot is a no-op.
	require.NoError(t, cs.DeleteConversation("absent"))
}

func TestDeleteAllConversations(t *testing.T) {
	cs := store.NewConversationFileStore(t.TempDir())

	for _, id := range []domain.SessionID{"a", "b", "c"} {
		require.NoError(t, cs.SaveConversation("pass", domain.Conversation{Session: id}))
	}
	require.NoError(t, cs.DeleteAllConversations())

	ids, err := cs.ListConversations()
	require.NoError(t, err)
	require.Empty(t, ids)
}
