package bankaccountrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finmock/finmock/internal/domain"
)

func TestGet(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	account, err := repo.Get(ctx, "ACC1234567890")
	require.NoError(t, err)
	require.Equal(t, "USER1234", account.UserID)
	require.Equal(t, domain.BankingTypeChecking, account.AccountType)
	require.Equal(t, domain.BankingStatusActive, account.Status)
	require.True(t, account.Balance.Equal(decimal.New(1542050, -2)))
	require.Equal(t, "USD", account.Currency)

	_, err = repo.Get(ctx, "ACC0000000000")
	require.True(t, errors.Is(err, domain.ErrAccountNotFound))
}

func TestExists(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	require.True(t, repo.Exists(ctx, "ACC9876543210"))
	require.False(t, repo.Exists(ctx, "ACC0000000000"))
}

func TestListByUser(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	accounts := repo.ListByUser(ctx, "USER1234")
	require.Len(t, accounts, 2)
	require.Equal(t, "ACC1234567890", accounts[0].AccountID)
	require.Equal(t, "ACC9876543210", accounts[1].AccountID)

	require.Empty(t, repo.ListByUser(ctx, "NOSUCHUSER"))
}
