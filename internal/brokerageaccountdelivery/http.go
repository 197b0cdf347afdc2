// Package brokerageaccountdelivery manages delivery layer of brokerage
// accounts.
package brokerageaccountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finmock/finmock/internal/brokerageaccountservice"
	"github.com/finmock/finmock/internal/domain"
	"github.com/finmock/finmock/pkg/errorspkg"
	"github.com/finmock/finmock/pkg/pagepkg"
	"github.com/finmock/finmock/pkg/web"
)

// Service provides service layer interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package brokerageaccountdelivery
type Service interface {
	Create(ctx context.Context, p domain.CreateBrokerageAccountParams) (domain.BrokerageAccount, error)
	GetBalance(ctx context.Context, accountID string) (domain.Balance, error)
	Get(ctx context.Context, accountID string) (domain.BrokerageAccount, error)
	ListTransactions(ctx context.Context, accountID string, limit, offset int) (domain.TransactionPage, error)
	ListByUser(ctx context.Context, userID string, p brokerageaccountservice.ListParams) pagepkg.Page[domain.BrokerageAccount]
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type createRequest struct {
	UserID             string   `json:"userId" binding:"required,userid"`
	AccountType        string   `json:"accountType" binding:"required,oneof=individual joint ira roth_ira business"`
	InitialDeposit     *float64 `json:"initialDeposit" binding:"required,min=0,max=10000000"`
	TradingPermissions []string `json:"tradingPermissions" binding:"omitempty,dive,oneof=stocks options crypto forex"`
	RiskTolerance      string   `json:"riskTolerance" binding:"omitempty,oneof=conservative moderate aggressive"`
}

// Create handles http request to open a brokerage account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationFailed(err))

		return
	}

	account, err := h.service.Create(ctx, domain.CreateBrokerageAccountParams{
		UserID:             req.UserID,
		AccountType:        req.AccountType,
		InitialDeposit:     decimal.NewFromFloat(*req.InitialDeposit),
		TradingPermissions: req.TradingPermissions,
		RiskTolerance:      req.RiskTolerance,
	})
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, account)
}

type accountURI struct {
	AccountID string `uri:"accountId" binding:"required,brokerageaccountid"`
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
			gctx.JSON(http.StatusNotFound, web.AccountNotFound("Brokerage account not found", uri.AccountID))
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
	Status      string `form:"status" binding:"omitempty,oneof=pending active suspended closed"`
	AccountType string `form:"accountType" binding:"omitempty,oneof=individual joint ira roth_ira business"`
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

	page := h.service.ListByUser(ctx, uri.UserID, brokerageaccountservice.ListParams{
		Limit:       query.Limit,
		Offset:      query.Offset,
		Status:      query.Status,
		AccountType: query.AccountType,
	})

	gctx.JSON(http.StatusOK, page)
}
