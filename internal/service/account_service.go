package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op *operator.OperatorDelegator) *AccountService {
	return &AccountService{storage: store, operator: op}
}

// CreateAccount opens an account in the session's ledger.
func (s *AccountService) CreateAccount(ctx context.Context, sessionID uuid.UUID, account Account) (CreatedAccount, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return CreatedAccount{}, err
	}

	action := &actions.CreateAccount{
		Name:           account.Name,
		Password:       account.Password,
		Category:       account.Category,
		OpeningDeposit: account.OpeningDeposit,
	}
	if err = s.operator.Process(ctx, l, action); err != nil {
		return CreatedAccount{}, err
	}

	return CreatedAccount{
		CustomerID:    action.CustomerID,
		AccountNumber: action.AccountNumber,
	}, nil
}

// GetAccount returns a summary of one account.
func (s *AccountService) GetAccount(_ context.Context, sessionID uuid.UUID, accountNumber int64) (ledger.AccountSummary, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return ledger.AccountSummary{}, err
	}
	return l.Account(accountNumber)
}

// ListAccounts returns every account in the session's ledger.
func (s *AccountService) ListAccounts(_ context.Context, sessionID uuid.UUID) ([]ledger.AccountSummary, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return l.ListAccounts(), nil
}
