package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	RequestIDHeader = "X-Request-ID"
	contextKey      = "logger"
)

// New builds the process logger. Production writes JSON, anything else writes
// the console encoding.
func New(level string, production bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Into stores a request scoped logger on the gin context.
func Into(c *gin.Context, l *zap.Logger) {
	c.Set(contextKey, l)
}

// FromContext returns the request scoped logger, or fallback when the request
// did not go through the request id middleware.
func FromContext(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(contextKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}
