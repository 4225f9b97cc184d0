// Package ledger holds the in-memory account model: customers, accounts and
// their transaction histories, and the Ledger that owns and mutates them.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FirstCustomerID    int64 = 101
	FirstAccountNumber int64 = 913122106001
)

var (
	// MinimumBalance is the floor a withdrawal may not cross.
	MinimumBalance = decimal.NewFromInt(1000)
	// MinimumOpeningDeposit is the smallest amount an account can open with.
	MinimumOpeningDeposit = decimal.NewFromInt(1000)
)

// Ledger is the registry of customers and accounts and the only mutator of
// account balances. The zero value is not usable; call New.
type Ledger struct {
	mu                sync.RWMutex
	customers         map[int64]*Customer
	accounts          map[int64]*Account
	accountOrder      []int64
	nextCustomerID    int64
	nextAccountNumber int64

	now func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		customers:         make(map[int64]*Customer),
		accounts:          make(map[int64]*Account),
		nextCustomerID:    FirstCustomerID,
		nextAccountNumber: FirstAccountNumber,
		now:               time.Now,
	}
}

// CreateAccount registers a new customer with one account funded by
// openingAmount, and returns the allocated customer ID and account number.
func (l *Ledger) CreateAccount(name, password string, category Category, openingAmount decimal.Decimal) (int64, int64, error) {
	if !category.Valid() {
		return 0, 0, ErrInvalidCategory
	}
	if openingAmount.LessThan(MinimumOpeningDeposit) {
		return 0, 0, ErrOpeningDepositTooLow
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	customerID := l.nextCustomerID
	accountNumber := l.nextAccountNumber
	l.nextCustomerID++
	l.nextAccountNumber++

	customer := newCustomer(customerID, password)
	account := newAccount(name, accountNumber, category)
	customer.addAccount(account)

	account.mu.Lock()
	account.applyCredit(openingAmount, l.now())
	account.mu.Unlock()

	l.customers[customerID] = customer
	l.accounts[accountNumber] = account
	l.accountOrder = append(l.accountOrder, accountNumber)

	return customerID, accountNumber, nil
}

// Deposit credits amount to the account.
func (l *Ledger) Deposit(accountNumber int64, amount decimal.Decimal) (Transaction, error) {
	account, ok := l.lookup(accountNumber)
	if !ok {
		return Transaction{}, ErrAccountNotFound
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	account.mu.Lock()
	defer account.mu.Unlock()
	return account.applyCredit(amount, l.now()), nil
}

// Withdraw debits amount from the account unless that would leave less than
// MinimumBalance. Leaving exactly MinimumBalance is allowed.
func (l *Ledger) Withdraw(accountNumber int64, amount decimal.Decimal) (Transaction, error) {
	account, ok := l.lookup(accountNumber)
	if !ok {
		return Transaction{}, ErrAccountNotFound
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	account.mu.Lock()
	defer account.mu.Unlock()
	if account.balance.Sub(amount).LessThan(MinimumBalance) {
		return Transaction{}, ErrMinimumBalance
	}
	return account.applyDebit(amount, l.now()), nil
}

// ListAllTransactions concatenates every account's history in the order the
// accounts were created.
func (l *Ledger) ListAllTransactions() []Row {
	l.mu.RLock()
	accounts := make([]*Account, len(l.accountOrder))
	for i, number := range l.accountOrder {
		accounts[i] = l.accounts[number]
	}
	l.mu.RUnlock()

	rows := []Row{}
	for _, account := range accounts {
		rows = append(rows, account.RenderHistory()...)
	}
	return rows
}

// ListTransactionsFor returns the account's history, or an empty slice when
// the account does not exist.
func (l *Ledger) ListTransactionsFor(accountNumber int64) []Row {
	account, ok := l.lookup(accountNumber)
	if !ok {
		return []Row{}
	}
	return account.RenderHistory()
}

// Account returns a summary of one account.
func (l *Ledger) Account(accountNumber int64) (AccountSummary, error) {
	account, ok := l.lookup(accountNumber)
	if !ok {
		return AccountSummary{}, ErrAccountNotFound
	}
	return account.summary(), nil
}

// Customer returns the customer's ID and owned account numbers in display order.
func (l *Ledger) Customer(customerID int64) (CustomerSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	customer, ok := l.customers[customerID]
	if !ok {
		return CustomerSummary{}, ErrCustomerNotFound
	}
	return customer.summary(), nil
}

// ListAccounts summarizes every account in the order it was created.
func (l *Ledger) ListAccounts() []AccountSummary {
	l.mu.RLock()
	accounts := make([]*Account, len(l.accountOrder))
	for i, number := range l.accountOrder {
		accounts[i] = l.accounts[number]
	}
	l.mu.RUnlock()

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.summary())
	}
	return summaries
}

func (l *Ledger) lookup(accountNumber int64) (*Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	account, ok := l.accounts[accountNumber]
	return account, ok
}
