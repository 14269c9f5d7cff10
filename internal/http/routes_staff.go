package http

import (
	"github.com/gin-gonic/gin"

	"github.com/stevesplace/order-service/internal/middleware"
)

// StaffRoutes registers staff sign-in and the staff-only routes.
type StaffRoutes struct {
	handler *StaffHandler
	store   *StoreHandler
}

// NewStaffRoutes creates a new StaffRoutes instance.
func NewStaffRoutes(handler *StaffHandler, store *StoreHandler) *StaffRoutes {
	return &StaffRoutes{handler: handler, store: store}
}

// RegisterPublicRoutes registers the sign-in route when staff tokens can be
// issued.
func (r *StaffRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	if r.handler.auth == nil {
		return
	}
	rg.POST("/staff/token", r.handler.IssueToken)
}

// RegisterProtectedRoutes registers routes that need a staff token or API key.
func (r *StaffRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	staff := r.ProtectedGroup(rg, cfg)
	if r.store != nil {
		staff.POST("/closures", r.store.AddClosure)
	}
	staff.GET("/orders/today", r.handler.OrdersToday)
}

// ProtectedGroup returns the /staff group with authentication applied. A
// bearer token is tried first, then an API key; one of them is required.
func (r *StaffRoutes) ProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	staff := rg.Group("/staff")
	if cfg.StaffAuth != nil {
		staff.Use(middleware.StaffJWT(cfg.StaffAuth))
	}
	staff.Use(middleware.APIKeyAuth(cfg.APIKeys), middleware.RequireStaff())

	if cfg.StaffRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.StaffRateLimit, cfg.RateWindow)
		staff.Use(limiter.StaffRateLimit())
	}
	return staff
}

var (
	_ PublicRouteGroup    = (*StaffRoutes)(nil)
	_ ProtectedRouteGroup = (*StaffRoutes)(nil)
)
