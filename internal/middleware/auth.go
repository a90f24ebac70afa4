package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// JWTAuth verifies the bearer token and attaches the decoded claims to the
// request. Every protected route runs behind this.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			dto.AbortError(c, apperror.Unauthenticated("authorization header is required"))
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			dto.AbortError(c, apperror.Unauthenticated("invalid authorization header format"))
			return
		}

		claims, err := m.tokens.Verify(bearerToken[1])
		if err != nil {
			dto.AbortError(c, err)
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

// claimsFromGin reads the verified claims the auth middleware stored on the
// gin context.
func claimsFromGin(c *gin.Context) (*token.Claims, bool) {
	v, exists := c.Get(string(utils.ClaimsKey))
	if !exists {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
