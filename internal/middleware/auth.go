package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that accepts an API key as an alternative
// staff credential. It checks the X-API-Key header first, then the api_key
// query parameter. Requests already authenticated by token, requests without
// a key and servers without configured keys pass through unchanged.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 || GetStaff(c) != "" {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			c.Next()
			return
		}

		if !validKeys[key] {
			locale := i18n.GetLocale(c)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidAPIKey, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		SetStaff(c, apiKeyActor)
		c.Next()
	}
}
