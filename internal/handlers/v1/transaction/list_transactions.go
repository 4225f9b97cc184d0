package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// ListTransactionsInput is the Huma input for listing every transaction.
type ListTransactionsInput struct {
	SessionID string `path:"sessionID" doc:"Session UUID"`
}

// ListAccountTransactionsInput is the Huma input for one account's history.
type ListAccountTransactionsInput struct {
	SessionID     string `path:"sessionID" doc:"Session UUID"`
	AccountNumber int64  `path:"accountNumber" minimum:"913122106000" doc:"Account number"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions in chronological order per account, accounts in creation order"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, sessionID uuid.UUID) ([]ledger.Row, error)
	ListAccountTransactions(ctx context.Context, sessionID uuid.UUID, accountNumber int64) ([]ledger.Row, error)
}

// ListTransactionsHandler handles the transaction history endpoints.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/session/{sessionID}/transactions",
		Summary:     "List all transactions",
		Description: "Returns every account's history, accounts in creation order.",
		Tags:        []string{"Transactions"},
	}, h.listAll)

	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/session/{sessionID}/account/{accountNumber}/transactions",
		Summary:     "List account transactions",
		Description: "Returns one account's history in chronological order; empty for an unknown account.",
		Tags:        []string{"Transactions"},
	}, h.listAccount)
}

func (h *ListTransactionsHandler) listAll(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.ListTransactions(ctx, sessionID)
	if err != nil {
		return nil, apierror.FromError(err, "failed to list transactions")
	}
	return newListOutput(ctx, rows), nil
}

func (h *ListTransactionsHandler) listAccount(ctx context.Context, input *ListAccountTransactionsInput) (*ListTransactionsOutput, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.ListAccountTransactions(ctx, sessionID, input.AccountNumber)
	if err != nil {
		return nil, apierror.FromError(err, "failed to list transactions")
	}
	return newListOutput(ctx, rows), nil
}

func newListOutput(ctx context.Context, rows []ledger.Row) *ListTransactionsOutput {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(rows))
	}
	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: fromRows(rows)},
	}
}
