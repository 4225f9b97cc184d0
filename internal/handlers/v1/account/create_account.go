package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	SessionID string `path:"sessionID" doc:"Session UUID"`
	Body      CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" doc:"Customer name"`
	Password       string `json:"password,omitempty" doc:"Stored with the customer, never checked"`
	Category       string `json:"category" enum:"SAVING,CURRENT" doc:"Account category"`
	OpeningDeposit string `json:"openingDeposit" doc:"Initial deposit, at least 1000 (e.g. '1000' or '2500.50')"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	CustomerID    int64 `json:"customerID" doc:"Allocated customer ID"`
	AccountNumber int64 `json:"accountNumber" doc:"Allocated account number"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, sessionID uuid.UUID, account service.Account) (service.CreatedAccount, error)
}

// CreateAccountHandler handles POST /v1/session/{sessionID}/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/session/{sessionID}/account",
		Summary:       "Create an account",
		Description:   "Registers a customer with one account funded by the opening deposit.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (uuid.UUID, service.Account, error) {
	sessionID, err := apierror.ParseSessionID(input.SessionID)
	if err != nil {
		return uuid.Nil, service.Account{}, err
	}

	openingDeposit, err := decimal.NewFromString(input.Body.OpeningDeposit)
	if err != nil {
		return uuid.Nil, service.Account{}, huma.NewError(http.StatusBadRequest, "invalid openingDeposit", err)
	}
	if openingDeposit.LessThan(ledger.MinimumOpeningDeposit) {
		return uuid.Nil, service.Account{}, huma.NewError(http.StatusBadRequest, "openingDeposit must be at least "+ledger.MinimumOpeningDeposit.String())
	}

	category := ledger.Category(input.Body.Category)
	if !category.Valid() {
		return uuid.Nil, service.Account{}, huma.NewError(http.StatusBadRequest, "category must be SAVING or CURRENT")
	}

	return sessionID, service.Account{
		Name:           input.Body.Name,
		Password:       input.Body.Password,
		Category:       category,
		OpeningDeposit: openingDeposit,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, account, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, sessionID, account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("customerID", created.CustomerID)
		logData.AddData("accountNumber", created.AccountNumber)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body: CreateAccountResponse{
			CustomerID:    created.CustomerID,
			AccountNumber: created.AccountNumber,
		},
	}, nil
}
