package transaction

import (
	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// Transaction is the API response model for one history row.
type Transaction struct {
	CustomerName  string `json:"customerName" doc:"Account holder's display name"`
	AccountNumber int64  `json:"accountNumber" doc:"Account number"`
	Credited      string `json:"credited" doc:"Credited amount, 0.00 for a debit"`
	Debited       string `json:"debited" doc:"Debited amount, 0.00 for a credit"`
	Balance       string `json:"balance" doc:"Balance after this transaction"`
}

func fromRow(row ledger.Row) Transaction {
	return Transaction{
		CustomerName:  row.CustomerName,
		AccountNumber: row.AccountNumber,
		Credited:      row.Credited.StringFixed(2),
		Debited:       row.Debited.StringFixed(2),
		Balance:       row.Balance.StringFixed(2),
	}
}

func fromRows(rows []ledger.Row) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
