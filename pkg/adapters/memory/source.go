package memory

import (
	"context"
	"sort"

	"github.com/aretw0/tradein/pkg/domain"
)

// Source is a fixed, in-memory storefront: it implements ports.ConsoleSource,
// ports.ProductSource and ports.CatalogSource.
type Source struct {
	products []domain.Product
	catalogs map[string]domain.Catalog
}

// NewSource creates a source from products and per-console catalogs.
// catalogs may be nil.
func NewSource(products []domain.Product, catalogs map[string]domain.Catalog) *Source {
	cats := make(map[string]domain.Catalog, len(catalogs))
	for id, c := range catalogs {
		cats[id] = c.Clone()
	}
	return &Source{
		products: append([]domain.Product(nil), products...),
		catalogs: cats,
	}
}

// NewFromConsoles builds a source from bare consoles.
func NewFromConsoles(consoles ...domain.Console) *Source {
	products := make([]domain.Product, 0, len(consoles))
	for _, c := range consoles {
		p := domain.Product{
			ID:         c.ID,
			Slug:       c.Slug,
			Name:       c.Name,
			Platform:   c.Platform,
			OfferPrice: c.BasePrice,
		}
		if c.ImageRef != "" {
			p.Images = []string{c.ImageRef}
		}
		products = append(products, p)
	}
	return NewSource(products, nil)
}

// Consoles lists consoles of a platform, sorted by name.
func (s *Source) Consoles(ctx context.Context, platform domain.Platform, limit int) ([]domain.Console, error) {
	var out []domain.Console
	for _, p := range s.products {
		if platform != domain.PlatformUnknown && p.Platform != platform {
			continue
		}
		out = append(out, p.Console(""))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Console returns a console by ID or slug.
func (s *Source) Console(ctx context.Context, id string) (domain.Console, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		return domain.Console{}, err
	}
	return p.Console(""), nil
}

// Product returns a product by slug or ID.
func (s *Source) Product(ctx context.Context, slug string) (domain.Product, error) {
	for _, p := range s.products {
		if p.Slug == slug || p.ID == slug {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// Catalog returns the dedicated catalog of a console.
func (s *Source) Catalog(ctx context.Context, consoleID string) (domain.Catalog, error) {
	c, ok := s.catalogs[consoleID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.Clone(), nil
}
