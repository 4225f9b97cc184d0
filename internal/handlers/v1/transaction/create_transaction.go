package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

var minimumAmount = decimal.NewFromInt(1)

// CreateTransactionBody is the request body for a deposit or withdrawal.
type CreateTransactionBody struct {
	Amount string `json:"amount" doc:"Decimal amount, at least 1"`
}

// CreateTransactionInput is the Huma input for a deposit or withdrawal.
type CreateTransactionInput struct {
	SessionID     string `path:"sessionID" doc:"Session UUID"`
	AccountNumber int64  `path:"accountNumber" minimum:"913122106000" doc:"Account number"`
	Body          CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for a deposit or withdrawal.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	Deposit(ctx context.Context, sessionID uuid.UUID, accountNumber int64, amount decimal.Decimal) (ledger.Transaction, error)
	Withdraw(ctx context.Context, sessionID uuid.UUID, accountNumber int64, amount decimal.Decimal) (ledger.Transaction, error)
}

// CreateTransactionHandler handles the deposit and withdraw endpoints.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the deposit and withdraw endpoints with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/session/{sessionID}/account/{accountNumber}/deposit",
		Summary:     "Deposit",
		Description: "Credits the amount to the account.",
		Tags:        []string{"Transactions"},
	}, h.deposit)

	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/session/{sessionID}/account/{accountNumber}/withdraw",
		Summary:     "Withdraw",
		Description: "Debits the amount unless the balance would fall below the minimum of 1000.",
		Tags:        []string{"Transactions"},
	}, h.withdraw)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.UUID, decimal.Decimal, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return uuid.Nil, decimal.Zero, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThan(minimumAmount) {
		return uuid.Nil, decimal.Zero, huma.NewError(http.StatusBadRequest, "amount must be at least 1")
	}

	return sessionID, amount, nil
}

func (h *CreateTransactionHandler) deposit(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	return h.handle(ctx, input, "deposit", h.TransactionService.Deposit)
}

func (h *CreateTransactionHandler) withdraw(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	return h.handle(ctx, input, "withdraw", h.TransactionService.Withdraw)
}

func (h *CreateTransactionHandler) handle(
	ctx context.Context,
	input *CreateTransactionInput,
	name string,
	apply func(context.Context, uuid.UUID, int64, decimal.Decimal) (ledger.Transaction, error),
) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, amount, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("accountNumber", input.AccountNumber)
		defer logData.AddTiming(name + "Ms")()
	}

	tx, err := apply(ctx, sessionID, input.AccountNumber, amount)
	if err != nil {
		return nil, apierror.FromError(err, "failed to "+name)
	}

	return &CreateTransactionOutput{Body: fromRow(tx.Row())}, nil
}
