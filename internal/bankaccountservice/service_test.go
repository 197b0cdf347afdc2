package bankaccountservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finmock/finmock/internal/bankaccountrepo"
	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/internal/transactionservice"
)

func newService() *Service {
	generator := transactionservice.WithClock(func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	})

	return New(bankaccountrepo.NewRepoMem(), generator)
}

func TestGetBalance(t *testing.T) {
	service := newService()
	ctx := context.Background()

	balance, err := service.GetBalance(ctx, "ACC1234567890")
	require.NoError(t, err)
	require.Equal(t, "ACC1234567890", balance.AccountID)
	require.Equal(t, "USD", balance.Currency)
	require.Equal(t, "15420.5", balance.Balance.String())
	require.WithinDuration(t, time.Now().UTC(), balance.LastUpdated, time.Second)

	_, err = service.GetBalance(ctx, "ACC0000000000")
	require.True(t, errors.Is(err, domain.ErrAccountNotFound))
}

func TestListTransactions(t *testing.T) {
	service := newService()
	ctx := context.Background()

	first, err := service.ListTransactions(ctx, "ACC1234567890", 5, 0)
	require.NoError(t, err)
	require.Len(t, first.Transactions, 5)
	require.Equal(t, transactionservice.TotalTransactions, first.Pagination.Total)

	second, err := service.ListTransactions(ctx, "ACC1234567890", 5, 0)
	require.NoError(t, err)

	decimalComparer := cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})

	if diff := cmp.Diff(first, second, decimalComparer); diff != "" {
		t.Errorf("two listings differ (-first +second):\n%s", diff)
	}

	_, err = service.ListTransactions(ctx, "ACC0000000000", 5, 0)
	require.True(t, errors.Is(err, domain.ErrAccountNotFound))
}

func TestListByUser(t *testing.T) {
	service := newService()
	ctx := context.Background()

	testCases := []struct {
		name           string
		userID         string
		params         ListParams
		wantAccountIDs []string
		wantTotal      int
		wantHasMore    bool
	}{
		{
			name:           "NewestFirst",
			userID:         "USER1234",
			params:         ListParams{Limit: 10, Offset: 0},
			wantAccountIDs: []string{"ACC9876543210", "ACC1234567890"},
			wantTotal:      2,
		},
		{
			name:           "WindowWithMore",
			userID:         "USER1234",
			params:         ListParams{Limit: 1, Offset: 0},
			wantAccountIDs: []string{"ACC9876543210"},
			wantTotal:      2,
			wantHasMore:    true,
		},
		{
			name:           "FilterByType",
			userID:         "USER1234",
			params:         ListParams{Limit: 10, Offset: 0, AccountType: domain.BankingTypeChecking},
			wantAccountIDs: []string{"ACC1234567890"},
			wantTotal:      1,
		},
		{
			name:           "FilterByStatusExcludesAll",
			userID:         "USER1234",
			params:         ListParams{Limit: 10, Offset: 0, Status: domain.BankingStatusClosed},
			wantAccountIDs: []string{},
			wantTotal:      0,
		},
		{
			name:           "UnknownUser",
			userID:         "NOSUCHUSER",
			params:         ListParams{Limit: 10, Offset: 0},
			wantAccountIDs: []string{},
			wantTotal:      0,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			page := service.ListByUser(ctx, tc.userID, tc.params)

			gotIDs := make([]string, 0, len(page.Data))
			for _, a := range page.Data {
				gotIDs = append(gotIDs, a.AccountID)
			}

			if diff := cmp.Diff(tc.wantAccountIDs, gotIDs); diff != "" {
				t.Errorf("accounts mismatch (-want +got):\n%s", diff)
			}

			require.Equal(t, tc.wantTotal, page.Pagination.Total)
			require.Equal(t, tc.wantHasMore, page.Pagination.HasMore)
		})
	}
}
