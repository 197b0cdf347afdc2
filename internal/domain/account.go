// Package domain provides definitions of all entities.
//
// Balances and amounts serialize as plain JSON numbers to keep the public
// wire format, so the decimal package is switched to unquoted marshaling.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists indicates an attempt to store an account under an
	// identifier that is already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrIDGeneration indicates that no unique account identifier could be
	// generated within the retry budget.
	ErrIDGeneration = errors.New("could not generate a unique account id")
)

// Banking account types.
const (
	BankingTypeChecking = "checking"
	BankingTypeSavings  = "savings"
	BankingTypeCredit   = "credit"
	BankingTypeLoan     = "loan"
)

// Banking account statuses.
const (
	BankingStatusActive    = "active"
	BankingStatusInactive  = "inactive"
	BankingStatusSuspended = "suspended"
	BankingStatusClosed    = "closed"
)

// Brokerage account types.
const (
	BrokerageTypeIndividual = "individual"
	BrokerageTypeJoint      = "joint"
	BrokerageTypeIRA        = "ira"
	BrokerageTypeRothIRA    = "roth_ira"
	BrokerageTypeBusiness   = "business"
)

// Brokerage account statuses.
const (
	BrokerageStatusPending   = "pending"
	BrokerageStatusActive    = "active"
	BrokerageStatusSuspended = "suspended"
	BrokerageStatusClosed    = "closed"
)

// BankingAccount holds one banking account record of the seeded directory.
type BankingAccount struct {
	AccountID    string          `json:"accountId"`
	UserID       string          `json:"userId"`
	AccountType  string          `json:"accountType"`
	Status       string          `json:"status"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	DisplayName  string          `json:"displayName"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastActivity time.Time       `json:"lastActivity"`
}

// BrokerageAccount holds one brokerage account record.
type BrokerageAccount struct {
	AccountID          string          `json:"accountId"`
	UserID             string          `json:"userId"`
	AccountType        string          `json:"accountType"`
	Status             string          `json:"status"`
	Balance            decimal.Decimal `json:"balance"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`
	Currency           string          `json:"currency"`
	TradingPermissions []string        `json:"tradingPermissions"`
	RiskTolerance      string          `json:"riskTolerance"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastActivity       time.Time       `json:"lastActivity"`
}

// CreateBrokerageAccountParams carries the validated input for opening a
// brokerage account. Identifier, status and timestamps are assigned by the
// service and store.
type CreateBrokerageAccountParams struct {
	UserID             string
	AccountType        string
	InitialDeposit     decimal.Decimal
	TradingPermissions []string
	RiskTolerance      string
}

// Balance is the balance view of an account.
type Balance struct {
	AccountID   string          `json:"accountId"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
