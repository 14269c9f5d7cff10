// Package app provides service initialization.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/domain/menu"
	"github.com/stevesplace/order-service/internal/logger"
	"github.com/stevesplace/order-service/internal/service"
)

// ServiceComponents holds the services that need no database.
type ServiceComponents struct {
	Catalog   *menu.Catalog
	Items     service.ItemFactory
	Menu      service.MenuService
	Hours     *service.StoreHours
	Location  *time.Location
	StaffAuth service.StaffAuthService
}

// InitializeServices builds the pricing catalog, store hours and staff auth.
// A bad time zone, store window or price file stops startup.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	loc, err := cfg.Store.Location()
	if err != nil {
		return nil, err
	}

	hours, err := service.NewStoreHours(loc, cfg.Store.OpensAt, cfg.Store.ClosesAt)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg.Store.MenuPricesFile)
	if err != nil {
		return nil, err
	}

	l := logger.WithFields(map[string]any{
		"timezone":       loc.String(),
		"hours":          hours.Window(),
		"closed_weekday": cfg.Store.ClosedWeekday.String(),
		"card_fee_rate":  cfg.Store.CardFeeRate.String(),
	})
	l.Info().Msg("Store configured")

	return &ServiceComponents{
		Catalog:   catalog,
		Items:     service.NewItemFactory(catalog),
		Menu:      service.NewMenuService(catalog),
		Hours:     hours,
		Location:  loc,
		StaffAuth: InitializeStaffAuth(cfg.Auth),
	}, nil
}

// loadCatalog reads price tables from path, or returns the built-in menu when
// path is empty.
func loadCatalog(path string) (*menu.Catalog, error) {
	if path == "" {
		return menu.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu prices: %w", err)
	}
	defer f.Close()

	tables, err := menu.LoadPriceTables(f)
	if err != nil {
		return nil, fmt.Errorf("menu prices %s: %w", path, err)
	}
	catalog, err := menu.NewCatalog(tables)
	if err != nil {
		return nil, fmt.Errorf("menu prices %s: %w", path, err)
	}

	log.Info().Str("file", path).Msg("Loaded menu prices")
	return catalog, nil
}
