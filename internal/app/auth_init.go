// Package app provides authentication initialization.
package app

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/service"
)

// insecureJWTSecret is the placeholder shipped in the default configuration.
const insecureJWTSecret = "your-secret-key-change-in-production"

// InitializeStaffAuth returns the staff token service, or nil when staff
// tokens cannot be issued safely. API keys keep working either way.
func InitializeStaffAuth(cfg config.AuthConfig) service.StaffAuthService {
	if !cfg.Enabled {
		log.Info().Msg("Staff authentication disabled")
		return nil
	}
	if cfg.StaffSecretHash == "" {
		log.Warn().Msg("STAFF_SECRET_HASH not set - staff tokens disabled")
		return nil
	}

	cost, err := bcrypt.Cost([]byte(cfg.StaffSecretHash))
	if err != nil {
		log.Error().Err(err).Msg("STAFF_SECRET_HASH is not a bcrypt hash - staff tokens disabled")
		return nil
	}
	if cost < bcrypt.DefaultCost {
		log.Warn().Int("cost", cost).Msg("Staff secret hash uses a low bcrypt cost")
	}
	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == insecureJWTSecret {
		log.Error().Msg("JWT_SECRET_KEY is unset or the public default - staff tokens disabled")
		return nil
	}

	return service.NewStaffAuthService(cfg)
}
