package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type Deposit struct {
	AccountNumber int64
	Amount        decimal.Decimal

	Transaction ledger.Transaction
}

func (d *Deposit) Perform(_ context.Context, l *ledger.Ledger) error {
	tx, err := l.Deposit(d.AccountNumber, d.Amount)
	if err != nil {
		return err
	}
	d.Transaction = tx
	return nil
}
