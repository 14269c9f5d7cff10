package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/menu"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/service"
)

func menuRouter() *gin.Engine {
	items := service.NewItemFactory(nil)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Menu = service.NewMenuService(items.Catalog())
	cfg.Items = items
	return NewRouter(nil, NewHealthHandler(), cfg)
}

func TestMenuListing(t *testing.T) {
	router := menuRouter()

	t.Run("categories", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/menu/categories", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got []menu.Category
		decodeData(t, w, &got)
		assert.Equal(t, menu.Categories(), got)
	})

	t.Run("full menu", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/menu", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got []menu.Listing
		decodeData(t, w, &got)
		assert.Len(t, got, len(menu.Categories()))
	})

	t.Run("one category", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/menu/Hotdog", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got menu.Listing
		decodeData(t, w, &got)
		assert.Equal(t, menu.CategoryHotdog, got.Category)
		assert.NotEmpty(t, got.Slots)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/menu/Pizza", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
	})
}

func TestPriceItem(t *testing.T) {
	router := menuRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedPrice  string
		expectedField  string
	}{
		{
			name:           "sandwich",
			body:           bltTwo,
			expectedStatus: http.StatusOK,
			expectedPrice:  "13.50",
		},
		{
			name:           "combo",
			body:           comboTwo,
			expectedStatus: http.StatusOK,
			expectedPrice:  "8.50",
		},
		{
			name:           "missing type",
			body:           `{"quantity":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "type",
		},
		{
			name:           "unknown option",
			body:           `{"type":"Sandwich","quantity":1,"size":"HUGE","bread":"WHITE","meat":"BLT"}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "size",
		},
		{
			name:           "not an object",
			body:           `[1,2]`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/v1/items/price", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				if tt.expectedField != "" {
					assert.Equal(t, string(validation.KindStructural), resp.Details["kind"])
					assert.Equal(t, tt.expectedField, resp.Details["field"])
				}
				return
			}
			var line dto.ItemPriceResponse
			decodeData(t, w, &line)
			assert.Equal(t, tt.expectedPrice, line.Price)
			assert.NotEmpty(t, line.Summary)
		})
	}
}
