// Package apierror maps ledger and storage errors onto HTTP errors.
package apierror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// FromError converts err into a huma status error. msg is used for
// unexpected failures.
func FromError(err error, msg string) error {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return huma.Error404NotFound("session not found", err)
	case errors.Is(err, ledger.ErrNotFound):
		return huma.Error404NotFound(err.Error(), err)
	case errors.Is(err, ledger.ErrRejected):
		return huma.Error422UnprocessableEntity(err.Error(), err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// The operation was not applied; the client may retry.
		return huma.Error503ServiceUnavailable("request cancelled before it was applied", err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

// ParseSessionID parses a session path parameter.
func ParseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid sessionID", err)
	}
	return id, nil
}
