// Package bankaccountdelivery manages delivery layer of banking accounts.
package bankaccountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/finmock/finmock/internal/bankaccountservice"
	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/errorspkg"
	"github.com/finmock/finmock/pkg/pagepkg"
	"github.com/finmock/finmock/pkg/web"
)

// Service provides service layer interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankaccountdelivery
type Service interface {
	GetBalance(ctx context.Context, accountID string) (domain.Balance, error)
	Get(ctx context.Context, accountID string) (domain.BankingAccount, error)
	ListTransactions(ctx context.Context, accountID string, limit, offset int) (domain.TransactionPage, error)
	ListByUser(ctx context.Context, userID string, p bankaccountservice.ListParams) pagepkg.Page[domain.BankingAccount]
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type accountURI struct {
	AccountID string `uri:"accountId" binding:"required,bankingaccountid"`
}

// GetBalance handles http request to get an account's balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationFailed(err))

		return
	}

	balance, err := h.service.GetBalance(ctx, uri.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.AccountNotFound("Account not found", uri.AccountID))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balance)
}

type transactionsQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListTransactions handles http request to list an account's synthetic
// transactions.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationFailed(err))

		return
	}

	var query transactionsQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.QueryBindingFailed(err, gctx.Request.URL.Query()))

		return
	}

	page, err := h.service.ListTransactions(ctx, uri.AccountID, query.Limit, query.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.AccountNotFound("Account not found", uri.AccountID))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, page)
}

// Get handles http request to get a single account record.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationFailed(err))

		return
	}

	account, err := h.service.Get(ctx, uri.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.AccountNotFound("Banking account not found", uri.AccountID))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, account)
}

type userURI struct {
	UserID string `uri:"userId" binding:"required,userid"`
}

type listAccountsQuery struct {
	Limit       int    `form:"limit,default=10" binding:"min=1,max=50"`
	Offset      int    `form:"offset,default=0" binding:"min=0"`
	Status      string `form:"status" binding:"omitempty,oneof=active inactive suspended closed"`
	AccountType string `form:"accountType" binding:"omitempty,oneof=checking savings credit loan"`
}

// ListByUser handles http request to list a user's accounts.
func (h *Handler) ListByUser(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri userURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationFailed(err))

		return
	}

	var query listAccountsQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.QueryBindingFailed(err, gctx.Request.URL.Query()))

		return
	}

	page := h.service.ListByUser(ctx, uri.UserID, bankaccountservice.ListParams{
		Limit:       query.Limit,
		Offset:      query.Offset,
		Status:      query.Status,
		AccountType: query.AccountType,
	})

	gctx.JSON(http.StatusOK, page)
}
