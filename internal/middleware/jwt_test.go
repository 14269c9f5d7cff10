//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/mocks/servicemocks"
	"github.com/stevesplace/order-service/internal/service"
)

// staffRouter mounts the staff authentication chain in front of a handler
// that echoes the authenticated staff name.
func staffRouter(auth service.StaffAuthService, apiKeys map[string]bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/v1/staff/orders/today",
		StaffJWT(auth), APIKeyAuth(apiKeys), RequireStaff(),
		func(c *gin.Context) { c.String(http.StatusOK, GetStaff(c)) })
	return router
}

func TestStaffJWT(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*servicemocks.MockStaffAuthService)
		expectedStatus int
		expectedBody   string
		expectedError  string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			setupMock: func(m *servicemocks.MockStaffAuthService) {
				m.On("ValidateToken", "good-token").Return(&dto.StaffClaims{Staff: "steve"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "steve",
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			setupMock: func(m *servicemocks.MockStaffAuthService) {
				m.On("ValidateToken", "stale-token").Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid or expired token",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic c3RldmU6cGFzcw==",
			setupMock:      func(*servicemocks.MockStaffAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid or expired token",
		},
		{
			name:           "empty bearer",
			authHeader:     "Bearer   ",
			setupMock:      func(*servicemocks.MockStaffAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid or expired token",
		},
		{
			name:           "no credentials",
			setupMock:      func(*servicemocks.MockStaffAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authentication token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(servicemocks.MockStaffAuthService)
			tt.setupMock(auth)
			router := staffRouter(auth, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/orders/today", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), dto.ErrCodeUnauthorized)
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestStaffJWT_StoresClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := new(servicemocks.MockStaffAuthService)
	claims := &dto.StaffClaims{Staff: "maria"}
	auth.On("ValidateToken", "tok").Return(claims, nil)

	var got any
	router := gin.New()
	router.GET("/x", StaffJWT(auth), func(c *gin.Context) {
		got, _ = c.Get(string(StaffClaimsKey))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Same(t, claims, got)
}
