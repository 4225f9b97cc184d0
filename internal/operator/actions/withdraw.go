package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type Withdraw struct {
	AccountNumber int64
	Amount        decimal.Decimal

	Transaction ledger.Transaction
}

func (w *Withdraw) Perform(_ context.Context, l *ledger.Ledger) error {
	tx, err := l.Withdraw(w.AccountNumber, w.Amount)
	if err != nil {
		return err
	}
	w.Transaction = tx
	return nil
}
