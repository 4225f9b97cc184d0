package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type CreateAccount struct {
	Name           string
	Password       string
	Category       ledger.Category
	OpeningDeposit decimal.Decimal

	// Set by Perform.
	CustomerID    int64
	AccountNumber int64
}

func (c *CreateAccount) Perform(_ context.Context, l *ledger.Ledger) error {
	customerID, accountNumber, err := l.CreateAccount(c.Name, c.Password, c.Category, c.OpeningDeposit)
	if err != nil {
		return err
	}

	c.CustomerID = customerID
	c.AccountNumber = accountNumber
	return nil
}
