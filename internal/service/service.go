package service

import (
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Session     *SessionService
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a new Service over the given session storage. Mutations
// are executed by op.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Session:     NewSessionService(store),
		Account:     NewAccountService(store, op),
		Transaction: NewTransactionService(store, op),
	}
}
