package app

import (
	"github.com/sirupsen/logrus"

	"cryptalk/internal/domain"
	"cryptalk/internal/engine"
	identitysvc "cryptalk/internal/services/identity"
	"cryptalk/internal/store"
)

// Wire bundles all stores, services, and the session engine for the CLI.
type Wire struct {
	Identity      domain.IdentityService
	Conversations domain.ConversationStore
	Engine        *engine.Engine
	Registry      *engine.Registry
	Log           *logrus.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home)
	conversationStore := store.NewConversationFileStore(cfg.Home)

	// One registry per process; nothing global.
	registry := engine.NewRegistry()

	return &Wire{
		Identity:      identitysvc.New(identityStore),
		Conversations: conversationStore,
		Engine:        engine.New(registry, log),
		Registry:      registry,
		Log:           log,
	}, nil
}
