// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/http"
	"github.com/stevesplace/order-service/internal/middleware"
)

// closeTimeout bounds the database disconnect on shutdown.
const closeTimeout = 5 * time.Second

// Application is the wired HTTP engine plus the resources to release on shutdown.
type Application struct {
	Router   *gin.Engine
	services *ServiceComponents
	database *DatabaseComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
// The logger comes first so every later component logs with its settings.
func InitializeApp(cfg config.Config) (*Application, error) {
	InitializeLogger(cfg.Log)

	serviceComponents, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	// nil when the database is disabled or unreachable
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &Application{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		routing:  routerComponents,
	}, nil
}

// Close flushes audit entries and releases caches and the database connection.
func (a *Application) Close() {
	if a.routing != nil {
		a.routing.Stop()
	}
	middleware.StopAsyncLogger()

	if a.database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := a.database.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
	log.Info().Msg("Application resources released")
}
