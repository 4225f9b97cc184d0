package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// CreateSessionResponse is the response body for creating a session.
type CreateSessionResponse struct {
	SessionID string `json:"sessionID" doc:"Session UUID; every other call is scoped to it"`
}

// CreateSessionOutput is the response for creating a session.
type CreateSessionOutput struct {
	Status int
	Body   CreateSessionResponse
}

// sessionCreator is the interface for opening sessions.
type sessionCreator interface {
	CreateSession(ctx context.Context) (uuid.UUID, error)
}

// CreateSessionHandler handles POST /v1/session.
type CreateSessionHandler struct {
	SessionService sessionCreator
}

// NewCreateSessionHandler creates a new CreateSessionHandler.
func NewCreateSessionHandler(svc sessionCreator) *CreateSessionHandler {
	return &CreateSessionHandler{SessionService: svc}
}

// Register registers the create session endpoint with the Huma API.
func (h *CreateSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/v1/session",
		Summary:       "Create a session",
		Description:   "Starts a session backed by a new, empty ledger.",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSessionHandler) handle(ctx context.Context, _ *struct{}) (*CreateSessionOutput, error) {
	id, err := h.SessionService.CreateSession(ctx)
	if err != nil {
		return nil, apierror.FromError(err, "failed to create session")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("sessionID", id.String())
	}

	return &CreateSessionOutput{
		Status: http.StatusCreated,
		Body:   CreateSessionResponse{SessionID: id.String()},
	}, nil
}
