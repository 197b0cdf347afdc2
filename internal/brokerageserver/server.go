// Package brokerageserver manages server creation and api routing of the
// brokerage mock service.
package brokerageserver

import (
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/finmock/finmock/internal/brokerageaccountdelivery"
	"github.com/finmock/finmock/internal/brokerageaccountrepo"
	"github.com/finmock/finmock/internal/brokerageaccountservice"
	"github.com/finmock/finmock/internal/middleware"
	"github.com/finmock/finmock/internal/transactionservice"
	"github.com/finmock/finmock/pkg/configpkg"
	"github.com/finmock/finmock/pkg/idpkg"
	"github.com/finmock/finmock/pkg/openapipkg"
	"github.com/finmock/finmock/pkg/web"
)

// Service identity reported by the health and root endpoints.
const (
	ServiceName = "banking-brokerage-mock"
	Title       = "Banking Brokerage Mock API"
	Version     = "1.0.0"
)

//go:embed docs/openapi.yaml
var openapiYAML []byte

// Server holds the handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := brokerageaccountrepo.NewRepoMem()
	generator := transactionservice.New()

	accountService := brokerageaccountservice.New(accountRepo, generator)
	accountHandler := brokerageaccountdelivery.NewHandler(accountService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if !config.TrustProxy {
		if err := engine.SetTrustedProxies(nil); err != nil {
			return nil, errors.New("cannot configure trusted proxies")
		}
	}

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(config.Origins()))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.Recovery(config))

	base := "/api/" + config.APIVersion

	engine.GET(base+"/health", health)
	engine.POST(base+"/brokerage/accounts", accountHandler.Create)
	engine.GET(base+"/accounts/:accountId/balance", accountHandler.GetBalance)
	engine.GET(base+"/accounts/:accountId/transactions", accountHandler.ListTransactions)
	engine.GET(base+"/accounts/:accountId", accountHandler.Get)
	engine.GET(base+"/users/:userId/accounts", accountHandler.ListByUser)

	engine.GET("/", root(config, base))
	engine.GET("/openapi.json", openapiDoc(config))
	engine.GET("/api-docs", apiDocs)

	engine.NoRoute(func(gctx *gin.Context) {
		gctx.JSON(http.StatusNotFound, web.RouteNotFound(gctx.Request.URL.Path))
	})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(web.TagName)

		validations := map[string]validator.Func{
			"brokerageaccountid": idpkg.ValidBrokerageAccountID,
			"userid":             idpkg.ValidUserID,
		}

		for tag, fn := range validations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				return nil, errors.New("cannot register " + tag + " validator")
			}
		}
	}

	return &Server{Engine: engine, Config: config}, nil
}

func health(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{
		"service":   ServiceName,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func root(config configpkg.Config, base string) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{
			"name":          Title,
			"version":       Version,
			"environment":   config.Environment,
			"documentation": "/api-docs",
			"openapi":       "/openapi.json",
			"endpoints": gin.H{
				"health":        base + "/health",
				"createAccount": base + "/brokerage/accounts",
				"balance":       base + "/accounts/{accountId}/balance",
				"transactions":  base + "/accounts/{accountId}/transactions",
				"account":       base + "/accounts/{accountId}",
				"userAccounts":  base + "/users/{userId}/accounts",
			},
		})
	}
}

func openapiDoc(config configpkg.Config) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		doc, err := openapipkg.Generate(openapiYAML, config)
		if err != nil {
			l.Error().Err(err).Send()
			gctx.JSON(http.StatusInternalServerError, web.ErrorResponse{Error: "Failed to generate OpenAPI document"})

			return
		}

		gctx.JSON(http.StatusOK, doc)
	}
}

func apiDocs(gctx *gin.Context) {
	gctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(openapipkg.UIPage(Title)))
}
