package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stevesplace/order-service/internal/metrics"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/service"
)

// APIPrefix is the path prefix of every business route.
const APIPrefix = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	StaffRateLimit    int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableIdempotency bool
	Idempotency       middleware.IdempotencyConfig
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	StaffAuth         service.StaffAuthService
	Menu              service.MenuService
	Items             service.ItemFactory
	Checkout          service.CheckoutService
	Calendar          service.ClosureCalendar
	Location          *time.Location
	ClosedWeekday     time.Weekday
	ClosuresCacheTTL  time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		StaffRateLimit: 60,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
		ClosedWeekday:  time.Sunday,
	}
}

// NewRouter creates and configures the Gin router for the order service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group(APIPrefix)
	configureAPIMiddleware(api, &cfg)
	registerBusinessRoutes(api, handler, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		if cfg.LoggingService != nil {
			c.Set(loggingServiceKey, cfg.LoggingService)
		}
		c.Next()
	})

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idempotencyCfg := cfg.Idempotency
		if idempotencyCfg.Cache == nil {
			idempotencyCfg = middleware.DefaultIdempotencyConfig()
		}
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}

// registerBusinessRoutes registers the customer routes and, when staff
// sign-in or API keys are configured, the staff routes.
func registerBusinessRoutes(api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	var store *StoreHandler
	if cfg.Calendar != nil {
		var opts []StoreHandlerOption
		if cfg.ClosuresCacheTTL > 0 {
			opts = append(opts, WithClosuresCacheTTL(cfg.ClosuresCacheTTL))
		}
		store = NewStoreHandler(cfg.Calendar, cfg.ClosedWeekday, opts...)
	}

	var menuHandler *MenuHandler
	if cfg.Menu != nil && cfg.Items != nil {
		menuHandler = NewMenuHandler(cfg.Menu, cfg.Items)
	}

	groups := []any{NewOrderRoutes(handler, menuHandler, store)}
	if cfg.StaffAuth != nil || len(cfg.APIKeys) > 0 {
		groups = append(groups, NewStaffRoutes(NewStaffHandler(cfg.StaffAuth, cfg.Checkout, cfg.Location), store))
	}
	registerRouteGroups(api, cfg, groups...)
}
