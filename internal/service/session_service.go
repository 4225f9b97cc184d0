package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/storage"
)

// SessionService opens and closes ledger sessions.
type SessionService struct {
	storage *storage.Storage
}

// NewSessionService creates a new SessionService.
func NewSessionService(store *storage.Storage) *SessionService {
	return &SessionService{storage: store}
}

// CreateSession starts a session with an empty ledger and returns its ID.
func (s *SessionService) CreateSession(_ context.Context) (uuid.UUID, error) {
	return s.storage.Open()
}

// EndSession discards the session's ledger.
func (s *SessionService) EndSession(_ context.Context, id uuid.UUID) error {
	return s.storage.Close(id)
}
