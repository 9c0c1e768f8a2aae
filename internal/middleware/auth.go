package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/handlers"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
)

// AuthMiddleware gates the API behind a bearer token when enabled. The
// default deployment runs with auth disabled and the middleware passes
// every request through.
type AuthMiddleware struct {
	log     *logger.Logger
	enabled bool
	secret  []byte
}

func NewAuthMiddleware(log *logger.Logger, enabled bool, secret string) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, enabled: enabled, secret: []byte(secret)}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !am.enabled {
			c.Next()
			return
		}

		tokenString := extractBearerToken(c)
		if tokenString == "" {
			handlers.RespondProblem(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			am.log.Warn("rejected bearer token", "error", err)
			handlers.RespondProblem(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
