//go:build integration

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/middleware"
)

const integrationKey = "integration-key"

func integrationConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      1000,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
		},
		Store: config.StoreConfig{
			Timezone:      "America/New_York",
			OpensAt:       7*time.Hour + 30*time.Minute,
			ClosesAt:      17*time.Hour + 30*time.Minute,
			ClosedWeekday: time.Sunday,
			CardFeeRate:   decimal.RequireFromString("0.04"),
		},
		Cache: config.CacheConfig{Size: 100, TTL: time.Minute},
		Auth: config.AuthConfig{
			Enabled: true,
			APIKeys: map[string]bool{integrationKey: true},
		},
		Database: config.DatabaseConfig{
			URI:                            getSharedContainerURI(),
			DatabaseName:                   sanitizeDBNameForApp(t.Name()),
			LogsTTL:                        24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", integrationKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// nextStoreDay is noon a week out, skipping the closed weekday.
func nextStoreDay(loc *time.Location) time.Time {
	y, m, d := time.Now().In(loc).AddDate(0, 0, 7).Date()
	day := time.Date(y, m, d, 12, 0, 0, 0, loc)
	if day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func TestInitializeApp_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	application, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)
	t.Cleanup(application.Close)
	require.NotNil(t, application.database, "database should be connected")
	assert.NotNil(t, middleware.GetAsyncLogger())

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	day := nextStoreDay(loc)

	t.Run("readiness includes mongodb", func(t *testing.T) {
		w := serve(application.Router, http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "mongodb")
	})

	t.Run("order is placed and listed for staff", func(t *testing.T) {
		order := `{"customer_name":"Steve","phone_number":"7045551234","price":"6.75","payment_method":"cash",` +
			`"pickup_at":"` + day.Format(time.RFC3339) + `",` +
			`"items":[{"type":"Sandwich","quantity":1,"size":"REGULAR","bread":"WHITE","meat":"BLT"}]}`

		w := serve(application.Router, http.MethodPost, "/api/v1/orders", order)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed struct {
			Data struct {
				Reference string `json:"reference"`
				Total     string `json:"total"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
		assert.Equal(t, "6.75", placed.Data.Total)

		w = serve(application.Router, http.MethodGet, "/api/v1/orders/"+placed.Data.Reference, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = serve(application.Router, http.MethodGet, "/api/v1/staff/orders/today", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), placed.Data.Reference)
	})

	t.Run("closure blocks pickups on that day", func(t *testing.T) {
		closure := `{"date":"` + day.Format("2006-01-02") + `","reason":"Inventory"}`
		w := serve(application.Router, http.MethodPost, "/api/v1/staff/closures", closure)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		order := `{"customer_name":"Steve","phone_number":"7045551234","price":"6.75","payment_method":"cash",` +
			`"pickup_at":"` + day.Add(time.Hour).Format(time.RFC3339) + `",` +
			`"items":[{"type":"Sandwich","quantity":1,"size":"REGULAR","bread":"WHITE","meat":"BLT"}]}`
		w = serve(application.Router, http.MethodPost, "/api/v1/orders/validate", order)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "store_closed")

		w = serve(application.Router, http.MethodPost, "/api/v1/staff/closures", closure)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Run("connects and wires breakers", func(t *testing.T) {
		components := InitializeDatabase(integrationConfig(t).Database)
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.Close(t.Context()) })

		assert.NotNil(t, components.Orders)
		assert.NotNil(t, components.ClosedDates)
		assert.NotNil(t, components.LoggingService)
		assert.False(t, components.OrdersCircuitBreaker.IsOpen())
		assert.NoError(t, components.HealthCheck())
	})

	t.Run("unreachable database", func(t *testing.T) {
		cfg := integrationConfig(t).Database
		cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500"
		assert.Nil(t, InitializeDatabase(cfg))
	})
}
