// Package bankaccountservice manages business logic of banking accounts.
package bankaccountservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/pagepkg"
)

// Repo provides data access layer interface needed by the account service.
type Repo interface {
	Get(ctx context.Context, accountID string) (domain.BankingAccount, error)
	Exists(ctx context.Context, accountID string) bool
	ListByUser(ctx context.Context, userID string) []domain.BankingAccount
}

// TransactionGenerator produces the deterministic transaction listing for an
// account's present balance.
type TransactionGenerator interface {
	List(accountID string, balance decimal.Decimal, currency string, limit, offset int) domain.TransactionPage
}

// ListParams carries the validated listing window and filters.
type ListParams struct {
	Limit       int
	Offset      int
	Status      string
	AccountType string
}

// Service facilitates account service layer logic.
type Service struct {
	repo         Repo
	transactions TransactionGenerator
}

// New returns an account service backed by the given directory and generator.
func New(r Repo, tg TransactionGenerator) *Service {
	return &Service{repo: r, transactions: tg}
}

// GetBalance returns the balance view of the given account.
func (s *Service) GetBalance(ctx context.Context, accountID string) (domain.Balance, error) {
	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		AccountID:   account.AccountID,
		Balance:     account.Balance,
		Currency:    account.Currency,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Get returns the full account record for the given identifier.
func (s *Service) Get(ctx context.Context, accountID string) (domain.BankingAccount, error) {
	return s.repo.Get(ctx, accountID)
}

// ListTransactions generates the account's synthetic transaction window.
func (s *Service) ListTransactions(ctx context.Context, accountID string, limit, offset int) (domain.TransactionPage, error) {
	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.TransactionPage{}, err
	}

	return s.transactions.List(account.AccountID, account.Balance, account.Currency, limit, offset), nil
}

// ListByUser returns the user's accounts filtered, sorted newest first, and
// sliced to the requested window.
func (s *Service) ListByUser(ctx context.Context, userID string, p ListParams) pagepkg.Page[domain.BankingAccount] {
	accounts := s.repo.ListByUser(ctx, userID)

	params := pagepkg.Params[domain.BankingAccount]{Limit: p.Limit, Offset: p.Offset}

	if p.Status != "" {
		status := p.Status
		params.Filters = append(params.Filters, func(a domain.BankingAccount) bool {
			return a.Status == status
		})
	}

	if p.AccountType != "" {
		accountType := p.AccountType
		params.Filters = append(params.Filters, func(a domain.BankingAccount) bool {
			return a.AccountType == accountType
		})
	}

	return pagepkg.Paginate(accounts, func(a domain.BankingAccount) time.Time {
		return a.CreatedAt
	}, params)
}
