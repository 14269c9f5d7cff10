package http

import (
	"github.com/gin-gonic/gin"
)

// OrderRoutes registers the customer-facing routes: menu, item pricing,
// orders and the public closure listing.
type OrderRoutes struct {
	handler *Handler
	menu    *MenuHandler
	store   *StoreHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(handler *Handler, menu *MenuHandler, store *StoreHandler) *OrderRoutes {
	return &OrderRoutes{handler: handler, menu: menu, store: store}
}

// RegisterPublicRoutes registers the customer routes.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	if r.menu != nil {
		rg.GET("/menu", r.menu.GetMenu)
		rg.GET("/menu/categories", r.menu.ListCategories)
		rg.GET("/menu/:category", r.menu.GetCategory)
		rg.POST("/items/price", r.menu.PriceItem)
	}

	if r.handler != nil {
		orders := rg.Group("/orders")
		orders.POST("/validate", r.handler.ValidateOrder)
		orders.POST("", r.handler.PlaceOrder)
		orders.GET("/:reference", r.handler.GetOrder)
	}

	if r.store != nil {
		rg.GET("/store/closures", r.store.ListClosures)
	}
}

var _ PublicRouteGroup = (*OrderRoutes)(nil)
