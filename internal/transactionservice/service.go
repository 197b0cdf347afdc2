// Package transactionservice generates deterministic synthetic transactions
// from an account's present balance.
package transactionservice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/domain"
)

// TotalTransactions is the fixed synthetic history depth reported for every
// account.
const TotalTransactions = 50

type template struct {
	description string
	baseAmount  decimal.Decimal
	kind        string
}

// The template ring the generator cycles through. Order and base amounts are
// part of the reproducibility contract and must not change.
var templates = []template{
	{"Coffee Shop Purchase", decimal.New(-450, -2), domain.TransactionDebit},
	{"Grocery Store", decimal.New(-6723, -2), domain.TransactionDebit},
	{"Gas Station", decimal.New(-4500, -2), domain.TransactionDebit},
	{"Salary Deposit", decimal.New(350000, -2), domain.TransactionCredit},
	{"ATM Withdrawal", decimal.New(-10000, -2), domain.TransactionDebit},
	{"Online Transfer", decimal.New(-25000, -2), domain.TransactionDebit},
	{"Interest Payment", decimal.New(1250, -2), domain.TransactionCredit},
	{"Restaurant Bill", decimal.New(-8975, -2), domain.TransactionDebit},
	{"Refund", decimal.New(2500, -2), domain.TransactionCredit},
	{"Subscription Fee", decimal.New(-999, -2), domain.TransactionDebit},
}

var thousand = decimal.NewFromInt(1000)

// Service produces reproducible transaction listings. Identifiers, amounts,
// types, descriptions and running balances depend only on the account
// identifier, the window and the account's current balance. Dates are
// relative to the clock at generation time and carry at-instant granularity:
// two calls straddling a clock tick agree on everything except Date.
type Service struct {
	now func() time.Time
}

// New returns a generator reading the system clock.
func New() *Service {
	return &Service{now: time.Now}
}

// WithClock returns a generator reading time from the given function.
func WithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// Seed derives the generator seed from an account identifier by summing its
// byte values.
func Seed(accountID string) int {
	sum := 0
	for i := 0; i < len(accountID); i++ {
		sum += int(accountID[i])
	}

	return sum
}

// List generates the transaction window [offset, offset+limit) against the
// account's present balance. The running balance walks backwards from the
// present: each step subtracts the transaction amount, so the reported
// balance is the one after that subtraction. The arithmetic is exact decimal
// with half-away-from-zero rounding to two places.
func (s *Service) List(accountID string, balance decimal.Decimal, currency string, limit, offset int) domain.TransactionPage {
	seed := Seed(accountID)
	now := s.now().UTC()

	idSuffix := accountID
	if len(idSuffix) > 4 {
		idSuffix = idSuffix[len(idSuffix)-4:]
	}

	end := offset + limit
	if end > TotalTransactions {
		end = TotalTransactions
	}

	transactions := make([]domain.Transaction, 0, limit)
	current := balance

	for i := offset; i < end; i++ {
		tmpl := templates[(seed+i)%len(templates)]

		// variance in [-0.5, 0.5) scaled by 0.1, kept in exact decimal
		// form: amount = base * (1000 + ((seed+i)%100 - 50)) / 1000.
		varianceNum := int64((seed+i)%100 - 50)
		amount := tmpl.baseAmount.
			Mul(decimal.NewFromInt(1000 + varianceNum)).
			Div(thousand).
			Round(2)

		current = current.Sub(amount)

		transactions = append(transactions, domain.Transaction{
			ID:          fmt.Sprintf("TXN%s%04d", idSuffix, i+1),
			AccountID:   accountID,
			Amount:      amount,
			Currency:    currency,
			Description: tmpl.description,
			Type:        tmpl.kind,
			Date:        now.AddDate(0, 0, -(i + 1)),
			Balance:     current.Round(2),
		})
	}

	return domain.TransactionPage{
		AccountID:    accountID,
		Transactions: transactions,
		Pagination: domain.TransactionWindow{
			Limit:  limit,
			Offset: offset,
			Total:  TotalTransactions,
		},
	}
}
