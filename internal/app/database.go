// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/circuitbreaker"
	"github.com/stevesplace/order-service/internal/logger"
	"github.com/stevesplace/order-service/internal/metrics"
	"github.com/stevesplace/order-service/internal/repository"
	"github.com/stevesplace/order-service/internal/service"
)

// healthCheckTimeout bounds the readiness ping.
const healthCheckTimeout = 2 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                        *repository.MongoDB
	Orders                    repository.OrdersRepositoryInterface
	ClosedDates               repository.ClosedDatesRepositoryInterface
	LoggingService            service.LoggingService
	OrdersCircuitBreaker      *circuitbreaker.CircuitBreaker
	ClosedDatesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the breaker-wrapped
// repositories. Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled - orders cannot be placed and only the closed weekday is enforced")
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	ordersCB := newCircuitBreaker(cfg, "mongodb-orders")
	closedDatesCB := newCircuitBreaker(cfg, "mongodb-closed-dates")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                        db,
		Orders:                    repository.NewOrdersRepositoryWithCircuitBreaker(repository.NewOrdersRepository(db), ordersCB),
		ClosedDates:               repository.NewClosedDatesRepositoryWithCircuitBreaker(repository.NewClosedDatesRepository(db), closedDatesCB),
		LoggingService:            service.NewLoggingService(logsRepo),
		OrdersCircuitBreaker:      ordersCB,
		ClosedDatesCircuitBreaker: closedDatesCB,
		LogsCircuitBreaker:        logsCB,
	}
}

// newCircuitBreaker creates a breaker that ignores business errors such as
// duplicate keys and publishes its state as a metric.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		Ignore:           repository.IsBusinessError,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			l := logger.Component("circuitbreaker")
			l.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}

// HealthCheck pings the database.
func (d *DatabaseComponents) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return d.DB.HealthCheck(ctx)
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
