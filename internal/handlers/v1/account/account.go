package account

import "github.com/carson-networks/bank-ledger/internal/ledger"

// Account is the API response model for an account.
type Account struct {
	CustomerName     string `json:"customerName" doc:"Account holder's display name"`
	AccountNumber    int64  `json:"accountNumber" doc:"Account number"`
	Category         string `json:"category" doc:"SAVING or CURRENT"`
	Balance          string `json:"balance" doc:"Decimal balance"`
	TransactionCount int    `json:"transactionCount" doc:"Number of recorded transactions"`
}

func fromSummary(summary ledger.AccountSummary) Account {
	return Account{
		CustomerName:     summary.CustomerName,
		AccountNumber:    summary.AccountNumber,
		Category:         string(summary.Category),
		Balance:          summary.Balance.StringFixed(2),
		TransactionCount: summary.TransactionCount,
	}
}
