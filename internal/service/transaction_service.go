package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// TransactionService handles deposits, withdrawals and history queries.
type TransactionService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op *operator.OperatorDelegator) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// Deposit credits amount to the account.
func (s *TransactionService) Deposit(ctx context.Context, sessionID uuid.UUID, accountNumber int64, amount decimal.Decimal) (ledger.Transaction, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return ledger.Transaction{}, err
	}

	action := &actions.Deposit{AccountNumber: accountNumber, Amount: amount}
	if err = s.operator.Process(ctx, l, action); err != nil {
		return ledger.Transaction{}, err
	}
	return action.Transaction, nil
}

// Withdraw debits amount from the account, subject to the minimum balance.
func (s *TransactionService) Withdraw(ctx context.Context, sessionID uuid.UUID, accountNumber int64, amount decimal.Decimal) (ledger.Transaction, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return ledger.Transaction{}, err
	}

	action := &actions.Withdraw{AccountNumber: accountNumber, Amount: amount}
	if err = s.operator.Process(ctx, l, action); err != nil {
		return ledger.Transaction{}, err
	}
	return action.Transaction, nil
}

// ListTransactions returns every transaction in the session.
func (s *TransactionService) ListTransactions(_ context.Context, sessionID uuid.UUID) ([]ledger.Row, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return l.ListAllTransactions(), nil
}

// ListAccountTransactions returns one account's history; empty when the
// account does not exist.
func (s *TransactionService) ListAccountTransactions(_ context.Context, sessionID uuid.UUID, accountNumber int64) ([]ledger.Row, error) {
	l, err := s.storage.Ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return l.ListTransactionsFor(accountNumber), nil
}
