package ports

import (
	"context"

	"github.com/aretw0/tradein/pkg/domain"
)

// ConsoleSource lists tradeable consoles.
type ConsoleSource interface {
	// Consoles returns up to limit consoles of the given platform.
	// limit <= 0 means no limit.
	Consoles(ctx context.Context, platform domain.Platform, limit int) ([]domain.Console, error)

	// Console returns a single console by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Console(ctx context.Context, id string) (domain.Console, error)
}

// ProductSource retrieves sellable products for the configurator and the cart.
type ProductSource interface {
	// Product returns a product by slug or ID.
	// Returns domain.ErrNotFound if it does not exist.
	Product(ctx context.Context, slug string) (domain.Product, error)
}

// CatalogSource retrieves per-console question catalogs.
type CatalogSource interface {
	// Catalog returns the questions for a console.
	// Returns domain.ErrNotFound when the console has no dedicated catalog.
	Catalog(ctx context.Context, consoleID string) (domain.Catalog, error)
}
