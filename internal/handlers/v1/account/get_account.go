package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// GetAccountInput is the Huma input for reading an account.
type GetAccountInput struct {
	SessionID     string `path:"sessionID" doc:"Session UUID"`
	AccountNumber int64  `path:"accountNumber" minimum:"913122106000" doc:"Account number"`
}

// GetAccountOutput is the Huma output for reading an account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for reading accounts.
type accountGetter interface {
	GetAccount(ctx context.Context, sessionID uuid.UUID, accountNumber int64) (ledger.AccountSummary, error)
}

// GetAccountHandler handles GET /v1/session/{sessionID}/account/{accountNumber}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/session/{sessionID}/account/{accountNumber}",
		Summary:     "Get an account",
		Description: "Returns the account's holder, category and current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	summary, err := h.AccountService.GetAccount(ctx, sessionID, input.AccountNumber)
	if err != nil {
		return nil, apierror.FromError(err, "failed to get account")
	}

	return &GetAccountOutput{Body: fromSummary(summary)}, nil
}
