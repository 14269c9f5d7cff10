package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes open to customers.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind staff authentication. The group
// applies its own auth middleware from cfg.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// registerRouteGroups registers each group under api: public routes first,
// then protected ones. A group may implement either interface or both.
func registerRouteGroups(api *gin.RouterGroup, cfg *RouterConfig, groups ...any) {
	for _, g := range groups {
		if public, ok := g.(PublicRouteGroup); ok {
			public.RegisterPublicRoutes(api)
		}
	}
	for _, g := range groups {
		if protected, ok := g.(ProtectedRouteGroup); ok {
			protected.RegisterProtectedRoutes(api, cfg)
		}
	}
}
