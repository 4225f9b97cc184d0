package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a balance and its append-only history. The mutex guards
// balance and history; the ledger takes it around check-then-act sequences.
type Account struct {
	mu           sync.Mutex
	customerName string
	number       int64
	category     Category
	balance      decimal.Decimal
	history      []Transaction
}

// AccountSummary is a read-only view of an account.
type AccountSummary struct {
	CustomerName     string
	AccountNumber    int64
	Category         Category
	Balance          decimal.Decimal
	TransactionCount int
}

func newAccount(customerName string, number int64, category Category) *Account {
	return &Account{
		customerName: customerName,
		number:       number,
		category:     category,
		balance:      decimal.Zero,
	}
}

func (a *Account) credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

func (a *Account) recordTransaction(t Transaction) {
	a.history = append(a.history, t)
}

// applyCredit credits amount and records the resulting transaction.
// Caller holds a.mu.
func (a *Account) applyCredit(amount decimal.Decimal, now time.Time) Transaction {
	a.credit(amount)
	t := Transaction{
		AccountNumber: a.number,
		CustomerName:  a.customerName,
		Credited:      amount,
		Debited:       decimal.Zero,
		Balance:       a.balance,
		CreatedAt:     now,
	}
	a.recordTransaction(t)
	return t
}

// applyDebit debits amount and records the resulting transaction.
// Caller holds a.mu.
func (a *Account) applyDebit(amount decimal.Decimal, now time.Time) Transaction {
	a.debit(amount)
	t := Transaction{
		AccountNumber: a.number,
		CustomerName:  a.customerName,
		Credited:      decimal.Zero,
		Debited:       amount,
		Balance:       a.balance,
		CreatedAt:     now,
	}
	a.recordTransaction(t)
	return t
}

// RenderHistory returns one row per transaction in chronological order.
func (a *Account) RenderHistory() []Row {
	a.mu.Lock()
	defer a.mu.Unlock()
	rows := make([]Row, len(a.history))
	for i, t := range a.history {
		rows[i] = t.Row()
	}
	return rows
}

func (a *Account) summary() AccountSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountSummary{
		CustomerName:     a.customerName,
		AccountNumber:    a.number,
		Category:         a.category,
		Balance:          a.balance,
		TransactionCount: len(a.history),
	}
}
