package ratchet

import (
	"cryptalk/internal/domain"
	"cryptalk/internal/util/memzero"
)

// Snapshot exports the session state for the encrypted conversation
// store. The returned value carries live key material; the caller must
// wipe it (WipeSnapshot) once persisted.
func (s *Session) Snapshot() (domain.RatchetSnapshot, error) {
	if s.cleared {
		return domain.RatchetSnapshot{}, ErrSessionCleared
	}
	snap := domain.RatchetSnapshot{
		RootKey:             s.rootKey,
		SendingChainKey:     s.sendingChainKey,
		ReceivingChainKey:   s.receivingChainKey,
		SendingRatchetKey:   s.sendingRatchetKey,
		MessageNumber:       s.messageNumber,
		PreviousChainLength: s.previousChainLength,
	}
	if s.receivingRatchetKey != nil {
		peer := *s.receivingRatchetKey
		snap.ReceivingRatchetKey = &peer
	}
	return snap, nil
}

// FromSnapshot rebuilds a session from a stored snapshot.
func FromSnapshot(snap domain.RatchetSnapshot) *Session {
	s := &Session{
		rootKey:             snap.RootKey,
		sendingChainKey:     snap.SendingChainKey,
		receivingChainKey:   snap.ReceivingChainKey,
		sendingRatchetKey:   snap.SendingRatchetKey,
		messageNumber:       snap.MessageNumber,
		previousChainLength: snap.PreviousChainLength,
	}
	if snap.ReceivingRatchetKey != nil {
		peer := *snap.ReceivingRatchetKey
		s.receivingRatchetKey = &peer
	}
	return s
}

// WipeSnapshot erases the secret fields of an exported snapshot.
func WipeSnapshot(snap *domain.RatchetSnapshot) {
	memzero.Wipe(snap.RootKey[:])
	memzero.Wipe(snap.SendingChainKey[:])
	memzero.Wipe(snap.ReceivingChainKey[:])
	memzero.Wipe(snap.SendingRatchetKey.Secret[:])
	if snap.ReceivingRatchetKey != nil {
		memzero.Wipe(snap.ReceivingRatchetKey[:])
		snap.ReceivingRatchetKey = nil
	}
}
