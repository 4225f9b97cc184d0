package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one recorded credit or debit with the balance left behind.
// Exactly one of Credited and Debited is non-zero.
type Transaction struct {
	AccountNumber int64
	CustomerName  string
	Credited      decimal.Decimal
	Debited       decimal.Decimal
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// Row is the display tuple of a transaction.
type Row struct {
	CustomerName  string
	AccountNumber int64
	Credited      decimal.Decimal
	Debited       decimal.Decimal
	Balance       decimal.Decimal
}

// Row renders the transaction as a display tuple.
func (t Transaction) Row() Row {
	return Row{
		CustomerName:  t.CustomerName,
		AccountNumber: t.AccountNumber,
		Credited:      t.Credited,
		Debited:       t.Debited,
		Balance:       t.Balance,
	}
}
