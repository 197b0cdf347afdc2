// Package bankaccountrepo provides the in-memory banking account directory.
package bankaccountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/currencypkg"
)

// seedAccounts is the fixed demo directory loaded at startup.
var seedAccounts = []domain.BankingAccount{
	{
		AccountID:    "ACC1234567890",
		UserID:       "USER1234",
		AccountType:  domain.BankingTypeChecking,
		Status:       domain.BankingStatusActive,
		Balance:      decimal.New(1542050, -2),
		Currency:     currencypkg.USD,
		DisplayName:  "Primary Checking",
		CreatedAt:    time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		LastActivity: time.Date(2025, time.June, 6, 14, 22, 0, 0, time.UTC),
	},
	{
		AccountID:    "ACC9876543210",
		UserID:       "USER1234",
		AccountType:  domain.BankingTypeSavings,
		Status:       domain.BankingStatusActive,
		Balance:      decimal.New(875025, -2),
		Currency:     currencypkg.EUR,
		DisplayName:  "Euro Savings",
		CreatedAt:    time.Date(2024, time.March, 20, 9, 15, 0, 0, time.UTC),
		LastActivity: time.Date(2025, time.June, 5, 11, 45, 0, 0, time.UTC),
	},
	{
		AccountID:    "ACC5555666677",
		UserID:       "USER5678",
		AccountType:  domain.BankingTypeSavings,
		Status:       domain.BankingStatusActive,
		Balance:      decimal.New(12500000, -2),
		Currency:     currencypkg.USD,
		DisplayName:  "High Yield Savings",
		CreatedAt:    time.Date(2024, time.May, 10, 16, 45, 0, 0, time.UTC),
		LastActivity: time.Date(2025, time.June, 7, 9, 12, 0, 0, time.UTC),
	},
	{
		AccountID:    "ACC1111222233",
		UserID:       "USER5678",
		AccountType:  domain.BankingTypeCredit,
		Status:       domain.BankingStatusActive,
		Balance:      decimal.New(250075, -2),
		Currency:     currencypkg.GBP,
		DisplayName:  "Travel Credit Card",
		CreatedAt:    time.Date(2024, time.July, 1, 8, 0, 0, 0, time.UTC),
		LastActivity: time.Date(2025, time.June, 4, 18, 30, 0, 0, time.UTC),
	},
}

// RepoMem is the process-lifetime banking account directory. Lookups and
// listings can run concurrently; the directory never mutates after seeding.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.BankingAccount
	order    []string
}

// NewRepoMem returns a directory seeded with the fixed demo accounts.
func NewRepoMem() *RepoMem {
	r := &RepoMem{accounts: make(map[string]domain.BankingAccount, len(seedAccounts))}

	for _, a := range seedAccounts {
		r.accounts[a.AccountID] = a
		r.order = append(r.order, a.AccountID)
	}

	return r
}

// Get returns the account stored under the given identifier.
func (r *RepoMem) Get(ctx context.Context, accountID string) (domain.BankingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.BankingAccount{}, domain.ErrAccountNotFound
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
func (r *RepoMem) ListByUser(ctx context.Context, userID string) []domain.BankingAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.BankingAccount, 0, len(r.order))

	for _, id := range r.order {
		if a := r.accounts[id]; a.UserID == userID {
			accounts = append(accounts, a)
		}
	}

	return accounts
}
