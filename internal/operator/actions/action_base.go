package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// IAction is a single mutation applied to a ledger by an operator.
type IAction interface {
	Perform(ctx context.Context, l *ledger.Ledger) error
}
