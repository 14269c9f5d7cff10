package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/mocks/servicemocks"
	"github.com/stevesplace/order-service/internal/service"
)

func staffAuthRouter(t *testing.T, auth *servicemocks.MockStaffAuthService, checkout service.CheckoutService) *gin.Engine {
	t.Helper()
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.StaffAuth = auth
	cfg.Checkout = checkout
	cfg.Calendar = openCalendar()
	cfg.Location = newYork(t)
	return NewRouter(nil, NewHealthHandler(), cfg)
}

func TestIssueToken(t *testing.T) {
	token := &dto.StaffTokenResponse{AccessToken: "signed", TokenType: "Bearer", ExpiresIn: 43200}

	tests := []struct {
		name           string
		body           string
		token          *dto.StaffTokenResponse
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "issued", body: `{"secret":"s3cret","staff_name":"steve"}`, token: token, expectedStatus: http.StatusOK},
		{name: "missing secret", body: `{"staff_name":"steve"}`, expectedStatus: http.StatusBadRequest, expectedCode: dto.ErrCodeInvalidRequest},
		{name: "wrong secret", body: `{"secret":"guess","staff_name":"steve"}`, err: service.ErrInvalidStaffSecret, expectedStatus: http.StatusUnauthorized, expectedCode: dto.ErrCodeUnauthorized},
		{name: "sign-in disabled", body: `{"secret":"s3cret"}`, err: service.ErrStaffAuthNotConfigured, expectedStatus: http.StatusServiceUnavailable, expectedCode: dto.ErrCodeUnavailable},
		{name: "signing failure", body: `{"secret":"s3cret"}`, err: errors.New("sign"), expectedStatus: http.StatusInternalServerError, expectedCode: dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(servicemocks.MockStaffAuthService)
			auth.On("IssueToken", mock.Anything, mock.Anything, mock.Anything).Return(tt.token, tt.err).Maybe()
			router := staffAuthRouter(t, auth, nil)

			w := do(router, http.MethodPost, "/api/v1/staff/token", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
				return
			}
			var got dto.StaffTokenResponse
			decodeData(t, w, &got)
			assert.Equal(t, "signed", got.AccessToken)
			assert.Equal(t, "Bearer", got.TokenType)
			auth.AssertCalled(t, "IssueToken", mock.Anything, "s3cret", "steve")
		})
	}
}

func TestOrdersToday(t *testing.T) {
	orders := []model.OrderRecord{
		{Reference: "a", Total: decimal.RequireFromString("6.5"), PaymentMethod: model.PaymentCash, PaymentStatus: model.PaymentPending},
		{Reference: "b", Total: decimal.RequireFromString("22.88"), PaymentMethod: model.PaymentCard, PaymentStatus: model.PaymentPending},
	}

	newAuth := func() *servicemocks.MockStaffAuthService {
		auth := new(servicemocks.MockStaffAuthService)
		auth.On("ValidateToken", "good").Return(&dto.StaffClaims{Staff: "steve"}, nil)
		auth.On("ValidateToken", "expired").Return(nil, service.ErrInvalidToken)
		return auth
	}

	get := func(router *gin.Engine, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/orders/today", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("lists today's orders", func(t *testing.T) {
		checkout := new(servicemocks.MockCheckoutService)
		checkout.On("OrdersToday", mock.Anything).Return(orders, nil)
		router := staffAuthRouter(t, newAuth(), checkout)

		w := get(router, "good")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got dto.OrderListResponse
		decodeData(t, w, &got)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, time.Now().In(newYork(t)).Format(model.DateLayout), got.Date)
		assert.Equal(t, "6.50", got.Orders[0].Total)
		assert.Equal(t, "card", got.Orders[1].PaymentMethod)
	})

	t.Run("no token", func(t *testing.T) {
		router := staffAuthRouter(t, newAuth(), new(servicemocks.MockCheckoutService))

		w := get(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		router := staffAuthRouter(t, newAuth(), new(servicemocks.MockCheckoutService))

		w := get(router, "expired")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("database unavailable", func(t *testing.T) {
		router := staffAuthRouter(t, newAuth(), nil)

		w := get(router, "good")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
