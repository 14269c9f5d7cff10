package service

import (
	"errors"
	"fmt"

	"github.com/stevesplace/order-service/internal/domain/menu"
)

// ErrUnknownCategory is returned for a category the menu does not have.
var ErrUnknownCategory = errors.New("unknown menu category")

// MenuService serves the read-only menu built from the pricing catalog.
type MenuService interface {
	Categories() []menu.Category
	Menu() []menu.Listing
	Category(tag string) (menu.Listing, error)
}

// MenuServiceImpl implements MenuService.
type MenuServiceImpl struct {
	catalog *menu.Catalog
}

// NewMenuService creates a menu service over catalog, the same catalog the
// item factory prices from.
func NewMenuService(catalog *menu.Catalog) *MenuServiceImpl {
	if catalog == nil {
		catalog = menu.DefaultCatalog()
	}
	return &MenuServiceImpl{catalog: catalog}
}

func (s *MenuServiceImpl) Categories() []menu.Category { return menu.Categories() }

func (s *MenuServiceImpl) Menu() []menu.Listing { return s.catalog.Menu() }

// Category returns the listing for a category tag.
func (s *MenuServiceImpl) Category(tag string) (menu.Listing, error) {
	c, err := menu.ParseCategory(tag)
	if err != nil {
		return menu.Listing{}, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
	}
	return s.catalog.Listing(c)
}

var _ MenuService = (*MenuServiceImpl)(nil)
