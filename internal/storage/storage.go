package storage

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

var ErrSessionNotFound = errors.New("session not found")

// Storage keeps one ledger per session. Nothing outlives the process.
type Storage struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*ledger.Ledger
}

func NewStorage() *Storage {
	return &Storage{
		sessions: make(map[uuid.UUID]*ledger.Ledger),
	}
}

// Open starts a session backed by a fresh, empty ledger.
func (s *Storage) Open() (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = ledger.New()
	return id, nil
}

// Ledger returns the ledger owned by the session.
func (s *Storage) Ledger(id uuid.UUID) (*ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return l, nil
}

// Close discards the session and its ledger.
func (s *Storage) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
