package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// Account is the input for opening an account in the service layer.
type Account struct {
	Name           string
	Password       string
	Category       ledger.Category
	OpeningDeposit decimal.Decimal
}

// CreatedAccount carries the identifiers allocated for a new account.
type CreatedAccount struct {
	CustomerID    int64
	AccountNumber int64
}
