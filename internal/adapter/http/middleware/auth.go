package middleware

import (
	"net/http"
	"strings"

	"proposalcraft/internal/logger"
	"proposalcraft/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// OwnerIDKey is the gin context key holding the authenticated account id.
const OwnerIDKey = "owner_id"

var (
	errMissingAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header is required", http.StatusUnauthorized)
	errInvalidAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization header format", http.StatusUnauthorized)
	errInvalidToken         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errMissingSubject       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "User ID not found in token", http.StatusUnauthorized)
)

// Auth verifies an HS256 bearer token signed with jwtSecret and stores the
// owner id (claim "sub", or "user_id") under OwnerIDKey.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c, nil)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, errMissingAuthorization)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, errInvalidAuthorization)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Warn("[auth][middleware] invalid token", zap.Error(err))
			abort(c, errInvalidToken)
			return
		}

		ownerID := subject(claims)
		if ownerID == "" {
			abort(c, errMissingSubject)
			return
		}
		c.Set(OwnerIDKey, ownerID)
		logger.Into(c, log.With(zap.String("owner_id", ownerID)))
		c.Next()
	}
}

// OwnerID returns the id stored by Auth, or "" on unauthenticated routes.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

func subject(claims jwt.MapClaims) string {
	for _, key := range []string{"sub", "user_id"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
