package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every lookup failure.
	ErrNotFound = errors.New("not found")
	// ErrRejected is matched by every business-rule violation.
	ErrRejected = errors.New("rejected")

	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)

	ErrMinimumBalance       = fmt.Errorf("%w: balance would fall below minimum", ErrRejected)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be greater than zero", ErrRejected)
	ErrOpeningDepositTooLow = fmt.Errorf("%w: opening deposit below minimum", ErrRejected)
	ErrInvalidCategory      = fmt.Errorf("%w: unknown account category", ErrRejected)
)
