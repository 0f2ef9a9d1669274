package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cryptalk/internal/domain"
	"cryptalk/internal/util/memzero"
)

const convSuffix = ".conv.enc"

// ErrNoIdentity is returned when no identity has been created yet.
var ErrNoIdentity = errors.New("no identity found; run init first")

// ConversationFileStore keeps one encrypted ratchet snapshot per session
// on disk. Snapshots carry live key material, so each file gets the same
// passphrase envelope as the identity.
type ConversationFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewConversationFileStore returns a ConversationFileStore rooted at dir.
func NewConversationFileStore(dir string) *ConversationFileStore {
	return &ConversationFileStore{dir: dir}
}

func (s *ConversationFileStore) path(id domain.SessionID) string {
	return filepath.Join(s.dir, id.String()+convSuffix)
}

// SaveConversation writes the encrypted snapshot for a session.
func (s *ConversationFileStore) SaveConversation(passphrase string, conversation domain.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(conversation)
	if err != nil {
		return err
	}
	defer memzero.Wipe(raw)

	time, memory, lanes := argonParamsDefault()
	ct, err := encrypt(passphrase, raw, time, memory, lanes)
	if err != nil {
		return err
	}
	return writeFile(s.path(conversation.Session), ct, 0o600)
}

// LoadConversation reads and decrypts the snapshot for a session.
func (s *ConversationFileStore) LoadConversation(passphrase string, id domain.SessionID) (domain.Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path(id))
	if err != nil {
		return domain.Conversation{}, false, err
	}
	if b == nil {
		return domain.Conversation{}, false, nil
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.Conversation{}, false, err
	}
	defer memzero.Wipe(pt)

	var conv domain.Conversation
	if err := json.Unmarshal(pt, &conv); err != nil {
		return domain.Conversation{}, false, err
	}
	return conv, true, nil
}

// DeleteConversation removes the snapshot for a session. Deleting an
// absent snapshot is a no-op.
func (s *ConversationFileStore) DeleteConversation(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ListConversations returns the session identifiers with stored snapshots.
func (s *ConversationFileStore) ListConversations() ([]domain.SessionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var ids []domain.SessionID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, convSuffix) {
			continue
		}
		ids = append(ids, domain.SessionID(strings.TrimSuffix(name, convSuffix)))
	}
	return ids, nil
}

// DeleteAllConversations removes every stored snapshot. Used by the panic
// command; errors on individual files do not stop the sweep.
func (s *ConversationFileStore) DeleteAllConversations() error {
	ids, err := s.ListConversations()
	if err != nil {
		return err
	}
	var firstErr error
	for _, id := range ids {
		if err := s.DeleteConversation(id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Compile-time assertion that ConversationFileStore implements domain.ConversationStore.
var _ domain.ConversationStore = (*ConversationFileStore)(nil)
