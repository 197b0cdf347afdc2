// Package brokerageaccountrepo provides the in-memory brokerage account
// directory.
package brokerageaccountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/currencypkg"
	"github.com/finmock/finmock/pkg/randompkg"
)

// Identifier generation retries before giving up on a unique id. Collisions
// over a 36^9 space are close to impossible, so exhausting the budget means
// the random source is broken.
const createRetries = 5

const idSuffixLength = 9

// seedAccounts is the fixed demo directory loaded at startup.
var seedAccounts = []domain.BrokerageAccount{
	{
		AccountID:          "BRK1A2B3C4D5",
		UserID:             "USER1234",
		AccountType:        domain.BrokerageTypeIndividual,
		Status:             domain.BrokerageStatusActive,
		Balance:            decimal.New(2575050, -2),
		AvailableBalance:   decimal.New(2375050, -2),
		Currency:           currencypkg.USD,
		TradingPermissions: []string{"stocks", "options"},
		RiskTolerance:      "moderate",
		CreatedAt:          time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		LastActivity:       time.Date(2025, time.June, 6, 14, 22, 0, 0, time.UTC),
	},
	{
		AccountID:          "BRK2X3Y4Z5A6",
		UserID:             "USER1234",
		AccountType:        domain.BrokerageTypeIRA,
		Status:             domain.BrokerageStatusActive,
		Balance:            decimal.New(4525075, -2),
		AvailableBalance:   decimal.New(4525075, -2),
		Currency:           currencypkg.USD,
		TradingPermissions: []string{"stocks"},
		RiskTolerance:      "conservative",
		CreatedAt:          time.Date(2024, time.March, 20, 9, 15, 0, 0, time.UTC),
		LastActivity:       time.Date(2025, time.June, 5, 11, 45, 0, 0, time.UTC),
	},
	{
		AccountID:          "BRK3M4N5O6P7",
		UserID:             "USER5678",
		AccountType:        domain.BrokerageTypeIndividual,
		Status:             domain.BrokerageStatusActive,
		Balance:            decimal.New(897525, -2),
		AvailableBalance:   decimal.New(745025, -2),
		Currency:           currencypkg.USD,
		TradingPermissions: []string{"stocks", "crypto"},
		RiskTolerance:      "aggressive",
		CreatedAt:          time.Date(2024, time.May, 10, 16, 45, 0, 0, time.UTC),
		LastActivity:       time.Date(2025, time.June, 7, 9, 12, 0, 0, time.UTC),
	},
}

// RepoMem is the process-lifetime brokerage account directory. Create is the
// only mutation, so the map is guarded for concurrent creation and listing.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.BrokerageAccount
	order    []string
}

// NewRepoMem returns a directory seeded with the fixed demo accounts.
func NewRepoMem() *RepoMem {
	r := &RepoMem{accounts: make(map[string]domain.BrokerageAccount, len(seedAccounts))}

	for _, a := range seedAccounts {
		r.accounts[a.AccountID] = a
		r.order = append(r.order, a.AccountID)
	}

	return r
}

// Get returns the account stored under the given identifier.
func (r *RepoMem) Get(ctx context.Context, accountID string) (domain.BrokerageAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.BrokerageAccount{}, domain.ErrAccountNotFound
	}

	return account, nil
}

// Exists reports whether the given identifier is in the directory.
func (r *RepoMem) Exists(ctx context.Context, accountID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[accountID]

	return ok
}

// ListByUser returns the accounts owned by the given user in insertion order.
func (r *RepoMem) ListByUser(ctx context.Context, userID string) []domain.BrokerageAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.BrokerageAccount, 0, len(r.order))

	for _, id := range r.order {
		if a := r.accounts[id]; a.UserID == userID {
			accounts = append(accounts, a)
		}
	}

	return accounts
}

// Create assigns a fresh BRK identifier to the given record and appends it to
// the directory. An existing entry is never overwritten: on the improbable
// identifier collision the generation is retried, and after createRetries
// attempts ErrIDGeneration is returned.
func (r *RepoMem) Create(ctx context.Context, account domain.BrokerageAccount) (domain.BrokerageAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < createRetries; attempt++ {
		id := "BRK" + randompkg.String(idSuffixLength)

		if _, taken := r.accounts[id]; taken {
			continue
		}

		account.AccountID = id
		r.accounts[id] = account
		r.order = append(r.order, id)

		return account, nil
	}

	return domain.BrokerageAccount{}, domain.ErrIDGeneration
}
