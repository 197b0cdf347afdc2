package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/finmock/finmock/pkg/configpkg"
	"github.com/finmock/finmock/pkg/web"
)

// Recovery converts panics into a generic 500 body. The stack trace is
// included only outside production.
func Recovery(config configpkg.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		res := web.ErrorResponse{Error: "Internal server error"}

		if config.Environment != "production" {
			res.Stack = string(debug.Stack())
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, res)
	})
}
