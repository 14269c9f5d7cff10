// Package app provides router configuration.
package app

import (
	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/http"
	"github.com/stevesplace/order-service/internal/middleware"
	"github.com/stevesplace/order-service/internal/repository"
	"github.com/stevesplace/order-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	Calendar      *service.ClosureCalendarService
	Validator     *service.OrderValidatorService
	Checkout      *service.CheckoutServiceImpl
}

// InitializeRouter wires the order pipeline and HTTP handlers. dbComponents
// may be nil, in which case orders are validated but never stored.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var (
		ordersRepo      repository.OrdersRepositoryInterface
		closedDatesRepo repository.ClosedDatesRepositoryInterface
		loggingService  service.LoggingService
	)
	if dbComponents != nil {
		ordersRepo = dbComponents.Orders
		closedDatesRepo = dbComponents.ClosedDates
		loggingService = dbComponents.LoggingService
	}

	var calendarOpts []service.CalendarOption
	if cfg.Cache.Size > 0 {
		calendarOpts = append(calendarOpts, service.WithClosureCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	calendar := service.NewClosureCalendar(closedDatesRepo, services.Location, cfg.Store.ClosedWeekday, calendarOpts...)

	validator := service.NewOrderValidator(services.Items, services.Hours, calendar,
		service.WithFeeRate(cfg.Store.CardFeeRate))
	checkout := service.NewCheckoutService(validator, ordersRepo, services.Location)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_closed_dates", dbComponents.ClosedDatesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	var apiKeys map[string]bool
	if cfg.Auth.Enabled {
		apiKeys = cfg.Auth.APIKeys
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.APIKeys = apiKeys
	routerCfg.EnableIdempotency = true
	routerCfg.Idempotency = middleware.DefaultIdempotencyConfig()
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.LoggingService = loggingService
	routerCfg.StaffAuth = services.StaffAuth
	routerCfg.Menu = services.Menu
	routerCfg.Items = services.Items
	routerCfg.Checkout = checkout
	routerCfg.Calendar = calendar
	routerCfg.Location = services.Location
	routerCfg.ClosedWeekday = cfg.Store.ClosedWeekday

	return &RouterComponents{
		Handler:       http.NewHandler(validator, checkout),
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Calendar:      calendar,
		Validator:     validator,
		Checkout:      checkout,
	}
}

// Stop releases the closure lookup cache and the idempotency cache.
func (r *RouterComponents) Stop() {
	if r.Calendar != nil {
		r.Calendar.Stop()
	}
	r.Config.Idempotency.Stop()
}
