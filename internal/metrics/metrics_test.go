//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/v1/menu/:category", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "uses the route template as path label",
			path:           "/api/v1/menu/Hotdog",
			label:          "/api/v1/menu/:category",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records error responses",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "collapses unknown paths",
			path:           "/does/not/exist",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordOrderValidation(t *testing.T) {
	before := testutil.ToFloat64(OrderValidationsTotal.WithLabelValues("temporal"))
	RecordOrderValidation(2*time.Millisecond, "temporal")
	assert.Equal(t, before+1, testutil.ToFloat64(OrderValidationsTotal.WithLabelValues("temporal")))
}

func TestRecordItemConfigured(t *testing.T) {
	before := testutil.ToFloat64(ItemsConfiguredTotal.WithLabelValues("Combo", "rejected"))
	RecordItemConfigured("Combo", "rejected")
	assert.Equal(t, before+1, testutil.ToFloat64(ItemsConfiguredTotal.WithLabelValues("Combo", "rejected")))
}

func TestRecordOrderPlaced(t *testing.T) {
	before := testutil.ToFloat64(OrdersPlacedTotal.WithLabelValues("card"))
	RecordOrderPlaced("card", decimal.RequireFromString("22.88"))
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersPlacedTotal.WithLabelValues("card")))
}

func TestCacheMetrics(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("closures", "get", "hit"))
	RecordCacheOperation("closures", "get", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("closures", "get", "hit")))

	UpdateCacheMetrics("closures", 3, 128)
	assert.Equal(t, 3.0, testutil.ToFloat64(CacheSize.WithLabelValues("closures")))
	assert.Equal(t, 128.0, testutil.ToFloat64(CacheCapacity.WithLabelValues("closures")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-orders", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-orders")))
}
