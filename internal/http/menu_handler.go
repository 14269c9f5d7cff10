package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/domain/order"
	"github.com/stevesplace/order-service/internal/i18n"
	"github.com/stevesplace/order-service/internal/service"
)

// MenuHandler serves the menu and single item pricing.
type MenuHandler struct {
	menu  service.MenuService
	items service.ItemFactory
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(menu service.MenuService, items service.ItemFactory) *MenuHandler {
	return &MenuHandler{menu: menu, items: items}
}

// ListCategories handles GET /api/v1/menu/categories requests.
//
// @Summary      List menu categories
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Category tags"
// @Router       /api/v1/menu/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.menu.Categories())
}

// GetMenu handles GET /api/v1/menu requests.
//
// @Summary      Full menu
// @Description  Every category with its option sets and prices, formatted to cents.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Menu listings"
// @Router       /api/v1/menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.menu.Menu())
}

// GetCategory handles GET /api/v1/menu/:category requests.
//
// @Summary      Menu category
// @Tags         Menu
// @Produce      json
// @Param        category path string true "Category tag" example(Hotdog)
// @Success      200 {object} dto.SuccessResponse "Category listing"
// @Failure      404 {object} dto.ErrorResponse "Unknown category"
// @Router       /api/v1/menu/{category} [get]
func (h *MenuHandler) GetCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	listing, err := h.menu.Category(c.Param("category"))
	if errors.Is(err, service.ErrUnknownCategory) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownCategory, nil)
		return
	}
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(listing)
}

// PriceItem handles POST /api/v1/items/price requests.
//
// @Summary      Price one item
// @Description  Configures a single item tagged with its category in "type" and returns its price and validated attributes.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        request body object true "Item tagged with its category" example({"type":"Hotdog","quantity":2,"dog_type":"BEEF"})
// @Success      200 {object} dto.SuccessResponse{data=dto.ItemPriceResponse} "Priced item"
// @Failure      400 {object} dto.ErrorResponse "Structural failure"
// @Failure      422 {object} dto.ErrorResponse "Business rule violated"
// @Router       /api/v1/items/price [post]
func (h *MenuHandler) PriceItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var payload json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	item, err := h.items.ConfigureTagged(payload)
	if err != nil {
		builder.Failure(err)
		return
	}

	o := order.New()
	o.Add(item)
	builder.SuccessOK(o.Lines()[0])
}
