package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/ports"
)

// Resolver performs the two-tier lookup perConsoleCatalog ?? defaultCatalog.
type Resolver struct {
	source   ports.CatalogSource
	fallback domain.Catalog
	logger   *slog.Logger
}

// ResolverOption configures the Resolver.
type ResolverOption func(*Resolver)

// WithFallback replaces the built-in default catalog.
func WithFallback(c domain.Catalog) ResolverOption {
	return func(r *Resolver) {
		r.fallback = c.Clone()
	}
}

// WithResolverLogger configures a logger for fetch failures.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver. source may be nil, in which case every
// console gets the fallback catalog.
func NewResolver(source ports.CatalogSource, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source:   source,
		fallback: Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the catalog for a console and where it came from
// (domain.CatalogSourceConsole or domain.CatalogSourceDefault).
// It never fails: missing or unreachable per-console catalogs degrade to the fallback.
func (r *Resolver) Resolve(ctx context.Context, consoleID string) (domain.Catalog, string) {
	if r.source == nil || consoleID == "" {
		return r.fallback.Clone(), domain.CatalogSourceDefault
	}

	c, err := r.source.Catalog(ctx, consoleID)
	switch {
	case err == nil && len(c) > 0:
		return c, domain.CatalogSourceConsole
	case err == nil, errors.Is(err, domain.ErrNotFound):
		r.logger.Debug("No console catalog, using default", "console_id", consoleID)
	default:
		r.logger.Warn("Catalog fetch failed, using default",
			"console_id", consoleID,
			"err", err,
		)
	}
	return r.fallback.Clone(), domain.CatalogSourceDefault
}

// Fallback returns a copy of the fallback catalog.
func (r *Resolver) Fallback() domain.Catalog {
	return r.fallback.Clone()
}
