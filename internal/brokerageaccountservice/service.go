// Package brokerageaccountservice manages business logic of brokerage
// accounts.
package brokerageaccountservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/currencypkg"
	"github.com/finmock/finmock/pkg/pagepkg"
)

// Repo provides data access layer interface needed by the account service.
type Repo interface {
	Get(ctx context.Context, accountID string) (domain.BrokerageAccount, error)
	Exists(ctx context.Context, accountID string) bool
	ListByUser(ctx context.Context, userID string) []domain.BrokerageAccount
	Create(ctx context.Context, account domain.BrokerageAccount) (domain.BrokerageAccount, error)
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

// Create opens a brokerage account. New accounts start pending, hold USD,
// carry both balances at the initial deposit, and default to stocks-only
// trading with moderate risk tolerance.
func (s *Service) Create(ctx context.Context, p domain.CreateBrokerageAccountParams) (domain.BrokerageAccount, error) {
	now := time.Now().UTC()

	permissions := p.TradingPermissions
	if len(permissions) == 0 {
		permissions = []string{"stocks"}
	}

	riskTolerance := p.RiskTolerance
	if riskTolerance == "" {
		riskTolerance = "moderate"
	}

	account := domain.BrokerageAccount{
		UserID:             p.UserID,
		AccountType:        p.AccountType,
		Status:             domain.BrokerageStatusPending,
		Balance:            p.InitialDeposit,
		AvailableBalance:   p.InitialDeposit,
		Currency:           currencypkg.USD,
		TradingPermissions: permissions,
		RiskTolerance:      riskTolerance,
		CreatedAt:          now,
		LastActivity:       now,
	}

	return s.repo.Create(ctx, account)
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
func (s *Service) Get(ctx context.Context, accountID string) (domain.BrokerageAccount, error) {
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
func (s *Service) ListByUser(ctx context.Context, userID string, p ListParams) pagepkg.Page[domain.BrokerageAccount] {
	accounts := s.repo.ListByUser(ctx, userID)

	params := pagepkg.Params[domain.BrokerageAccount]{Limit: p.Limit, Offset: p.Offset}

	if p.Status != "" {
		status := p.Status
		params.Filters = append(params.Filters, func(a domain.BrokerageAccount) bool {
			return a.Status == status
		})
	}

	if p.AccountType != "" {
		accountType := p.AccountType
		params.Filters = append(params.Filters, func(a domain.BrokerageAccount) bool {
			return a.AccountType == accountType
		})
	}

	return pagepkg.Paginate(accounts, func(a domain.BrokerageAccount) time.Time {
		return a.CreatedAt
	}, params)
}
