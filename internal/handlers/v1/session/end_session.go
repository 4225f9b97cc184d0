package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
)

// EndSessionInput is the Huma input for ending a session.
type EndSessionInput struct {
	SessionID string `path:"sessionID" doc:"Session UUID"`
}

// sessionEnder is the interface for discarding sessions.
type sessionEnder interface {
	EndSession(ctx context.Context, id uuid.UUID) error
}

// EndSessionHandler handles DELETE /v1/session/{sessionID}.
type EndSessionHandler struct {
	SessionService sessionEnder
}

// NewEndSessionHandler creates a new EndSessionHandler.
func NewEndSessionHandler(svc sessionEnder) *EndSessionHandler {
	return &EndSessionHandler{SessionService: svc}
}

// Register registers the end session endpoint with the Huma API.
func (h *EndSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "end-session",
		Method:        http.MethodDelete,
		Path:          "/v1/session/{sessionID}",
		Summary:       "End a session",
		Description:   "Discards the session and everything in its ledger.",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *EndSessionHandler) handle(ctx context.Context, input *EndSessionInput) (*struct{}, error) {
	id, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	if err = h.SessionService.EndSession(ctx, id); err != nil {
		return nil, apierror.FromError(err, "failed to end session")
	}
	return nil, nil
}
