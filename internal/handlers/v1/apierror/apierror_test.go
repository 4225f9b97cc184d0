package apierror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se))
	return se.GetStatus()
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session", storage.ErrSessionNotFound, http.StatusNotFound},
		{"account", ledger.ErrAccountNotFound, http.StatusNotFound},
		{"wrapped account", fmt.Errorf("deposit: %w", ledger.ErrAccountNotFound), http.StatusNotFound},
		{"minimum balance", ledger.ErrMinimumBalance, http.StatusUnprocessableEntity},
		{"opening deposit", ledger.ErrOpeningDepositTooLow, http.StatusUnprocessableEntity},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("queue: %w", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(t, FromError(tt.err, "failed")))
		})
	}
}

func TestParseSessionID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	parsed, err := ParseSessionID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseSessionID("not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
