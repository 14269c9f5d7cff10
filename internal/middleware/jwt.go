package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/service"
)

// StaffJWT returns a middleware that verifies a staff bearer token when one
// is sent. Requests without an Authorization header pass through
// unauthenticated; RequireStaff decides whether that is allowed.
func StaffJWT(authService service.StaffAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abortInvalidToken(c)
			return
		}

		claims, err := authService.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			abortInvalidToken(c)
			return
		}

		SetStaff(c, claims.Staff)
		c.Set(string(StaffClaimsKey), claims)
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
