package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

func newTestService(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()
	op := operator.NewOperatorDelegator(1, 8)
	op.Start()
	t.Cleanup(op.Stop)

	svc := NewService(storage.NewStorage(), op)
	sessionID, err := svc.Session.CreateSession(context.Background())
	require.NoError(t, err)
	return svc, sessionID
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
