package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/i18n"
)

const (
	// StaffKey is the context key for the authenticated staff name.
	StaffKey ContextKey = "staff"
	// StaffClaimsKey is the context key for the verified token claims.
	StaffClaimsKey ContextKey = "staff_claims"
)

// apiKeyActor is recorded as the staff name for requests authenticated by API key.
const apiKeyActor = "api-key"

// SetStaff records the authenticated staff member on the context.
func SetStaff(c *gin.Context, name string) {
	c.Set(string(StaffKey), name)
}

// GetStaff returns the authenticated staff member, or "" for anonymous requests.
func GetStaff(c *gin.Context) string {
	if v, exists := c.Get(string(StaffKey)); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// RequireStaff aborts with 401 unless StaffJWT or APIKeyAuth authenticated
// the request. It must run after them.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetStaff(c) != "" {
			c.Next()
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
	}
}
