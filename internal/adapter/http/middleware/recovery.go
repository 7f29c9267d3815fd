package middleware

import (
	"net/http"

	"proposalcraft/internal/logger"
	"proposalcraft/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.FromContext(c, base).Error("[http] panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"))
				abort(c, errInternal)
			}
		}()
		c.Next()
	}
}
