package middleware

import (
	"time"

	"proposalcraft/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags every request with an X-Request-ID, attaches a child logger
// carrying it and logs one line per request.
func RequestID(base *zap.Logger) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		requestID := c.GetHeader(logger.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(logger.RequestIDHeader, requestID)

		log := base.With(zap.String("request_id", requestID))
		logger.Into(c, log)

		start := time.Now()
		c.Next()

		log.Info("[http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
