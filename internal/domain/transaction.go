package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionDebit  = "debit"
	TransactionCredit = "credit"
)

// Transaction is one synthetic ledger entry. Transactions are regenerated on
// every request and never stored; for a fixed account and window every field
// except Date is reproducible bit for bit.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Balance     decimal.Decimal `json:"balance"`
}

// TransactionWindow is the pagination block of a transaction listing. Total
// is the fixed synthetic history depth, not a stored count.
type TransactionWindow struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// TransactionPage combines a generated transaction window with its
// pagination block.
type TransactionPage struct {
	AccountID    string            `json:"accountId"`
	Transactions []Transaction     `json:"transactions"`
	Pagination   TransactionWindow `json:"pagination"`
}
