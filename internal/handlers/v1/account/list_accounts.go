package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// ListAccountsInput is the Huma input for listing a session's accounts.
type ListAccountsInput struct {
	SessionID string `path:"sessionID" doc:"Session UUID"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"Accounts in creation order"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

type accountLister interface {
	ListAccounts(ctx context.Context, sessionID uuid.UUID) ([]ledger.AccountSummary, error)
}

// ListAccountsHandler handles GET /v1/session/{sessionID}/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/session/{sessionID}/accounts",
		Summary:     "List accounts",
		Description: "Returns every account in the session in the order it was opened.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	summaries, err := h.AccountService.ListAccounts(ctx, sessionID)
	if err != nil {
		return nil, apierror.FromError(err, "failed to list accounts")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(summaries))
	}

	accounts := make([]Account, len(summaries))
	for i, summary := range summaries {
		accounts[i] = fromSummary(summary)
	}
	return &ListAccountsOutput{
		Body: ListAccountsResponseBody{Accounts: accounts},
	}, nil
}
