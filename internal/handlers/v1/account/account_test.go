package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/service"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, sessionID uuid.UUID, account service.Account) (service.CreatedAccount, error) {
	args := m.Called(ctx, sessionID, account)
	return args.Get(0).(service.CreatedAccount), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, sessionID uuid.UUID, accountNumber int64) (ledger.AccountSummary, error) {
	args := m.Called(ctx, sessionID, accountNumber)
	return args.Get(0).(ledger.AccountSummary), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, sessionID uuid.UUID) ([]ledger.AccountSummary, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]ledger.AccountSummary), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	return api
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_Valid(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	parsedSession, account, err := parseCreateAccountInput(&CreateAccountInput{
		SessionID: sessionID.String(),
		Body: CreateAccountBody{
			Name:           "Asha",
			Password:       "secret",
			Category:       "CURRENT",
			OpeningDeposit: "2500.50",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, sessionID, parsedSession)
	assert.Equal(t, "Asha", account.Name)
	assert.Equal(t, "secret", account.Password)
	assert.Equal(t, ledger.CategoryCurrent, account.Category)
	assert.True(t, account.OpeningDeposit.Equal(decimal.RequireFromString("2500.50")))
}

func TestParseCreateAccountInput_Invalid(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4()).String()
	tests := []struct {
		name  string
		input CreateAccountInput
	}{
		{"bad session", CreateAccountInput{SessionID: "x", Body: CreateAccountBody{Category: "SAVING", OpeningDeposit: "1000"}}},
		{"bad amount", CreateAccountInput{SessionID: sessionID, Body: CreateAccountBody{Category: "SAVING", OpeningDeposit: "lots"}}},
		{"below minimum", CreateAccountInput{SessionID: sessionID, Body: CreateAccountBody{Category: "SAVING", OpeningDeposit: "999.99"}}},
		{"bad category", CreateAccountInput{SessionID: sessionID, Body: CreateAccountBody{Category: "LOAN", OpeningDeposit: "1000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseCreateAccountInput(&tt.input)
			assert.Error(t, err)
		})
	}
}

// -- HTTP tests --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, sessionID, mock.MatchedBy(func(a service.Account) bool {
		return a.Name == "Asha" &&
			a.Category == ledger.CategorySaving &&
			a.OpeningDeposit.Equal(decimal.NewFromInt(1000))
	})).Return(service.CreatedAccount{CustomerID: 101, AccountNumber: 913122106001}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/session/"+sessionID.String()+"/account", CreateAccountBody{
		Name:           "Asha",
		Password:       "secret",
		Category:       "SAVING",
		OpeningDeposit: "1000",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(101), body.CustomerID)
	assert.Equal(t, int64(913122106001), body.AccountNumber)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_BelowMinimum(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/session/"+uuid.Must(uuid.NewV4()).String()+"/account", CreateAccountBody{
		Name:           "Asha",
		Category:       "SAVING",
		OpeningDeposit: "500",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_UnknownCategory(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma enum validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/session/"+uuid.Must(uuid.NewV4()).String()+"/account", CreateAccountBody{
		Name:           "Asha",
		Category:       "LOAN",
		OpeningDeposit: "1000",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown session", storage.ErrSessionNotFound, http.StatusNotFound},
		{"rejected", ledger.ErrOpeningDepositTooLow, http.StatusUnprocessableEntity},
		{"unexpected", errors.New("queue full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mockAccountService)
			mockSvc.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
				Return(service.CreatedAccount{}, tt.err)

			resp := newTestAPI(t, mockSvc).Post("/v1/session/"+uuid.Must(uuid.NewV4()).String()+"/account", CreateAccountBody{
				Name:           "Asha",
				Category:       "CURRENT",
				OpeningDeposit: "1000",
			})

			assert.Equal(t, tt.want, resp.Code)
		})
	}
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, sessionID, int64(913122106001)).Return(ledger.AccountSummary{
		CustomerName:     "Asha",
		AccountNumber:    913122106001,
		Category:         ledger.CategorySaving,
		Balance:          decimal.RequireFromString("1500"),
		TransactionCount: 2,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf("/v1/session/%s/account/%d", sessionID, 913122106001))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Asha", body.CustomerName)
	assert.Equal(t, "SAVING", body.Category)
	assert.Equal(t, "1500.00", body.Balance)
	assert.Equal(t, 2, body.TransactionCount)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(ledger.AccountSummary{}, ledger.ErrAccountNotFound)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf("/v1/session/%s/account/%d", uuid.Must(uuid.NewV4()), 913122106050))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetAccount_BelowNumberRange(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf("/v1/session/%s/account/%d", uuid.Must(uuid.NewV4()), 42))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, sessionID).Return([]ledger.AccountSummary{
		{CustomerName: "Asha", AccountNumber: 913122106001, Category: ledger.CategorySaving, Balance: decimal.RequireFromString("1000"), TransactionCount: 1},
		{CustomerName: "Ravi", AccountNumber: 913122106002, Category: ledger.CategoryCurrent, Balance: decimal.RequireFromString("2500.5"), TransactionCount: 3},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/session/" + sessionID.String() + "/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.Len(t, body.Accounts, 2) {
		assert.Equal(t, int64(913122106001), body.Accounts[0].AccountNumber)
		assert.Equal(t, "CURRENT", body.Accounts[1].Category)
		assert.Equal(t, "2500.50", body.Accounts[1].Balance)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, mock.Anything).Return([]ledger.AccountSummary{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/session/" + uuid.Must(uuid.NewV4()).String() + "/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Accounts)
	assert.Empty(t, body.Accounts)
}

func TestHTTP_ListAccounts_UnknownSession(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, mock.Anything).
		Return([]ledger.AccountSummary(nil), storage.ErrSessionNotFound)

	resp := newTestAPI(t, mockSvc).Get("/v1/session/" + uuid.Must(uuid.NewV4()).String() + "/accounts")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListAccounts_InvalidSession(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Get("/v1/session/not-a-uuid/accounts")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListAccounts", mock.Anything, mock.Anything)
}
