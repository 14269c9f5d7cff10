//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "preflight from allowed origin",
			origins:        []string{"https://order.stevesplace.test"},
			method:         http.MethodOptions,
			origin:         "https://order.stevesplace.test",
			expectedStatus: http.StatusNoContent,
			expectedAllow:  "https://order.stevesplace.test",
		},
		{
			name:           "GET from allowed origin",
			origins:        []string{"https://order.stevesplace.test"},
			method:         http.MethodGet,
			origin:         "https://order.stevesplace.test",
			expectedStatus: http.StatusOK,
			expectedAllow:  "https://order.stevesplace.test",
		},
		{
			name:           "GET from unknown origin is refused",
			origins:        []string{"https://order.stevesplace.test"},
			method:         http.MethodGet,
			origin:         "https://elsewhere.test",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "default origins allow local front end",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedAllow:  "http://localhost:3000",
		},
		{
			name:           "request without origin passes",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/api/v1/menu", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(tt.method, "/api/v1/menu", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
