package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/ports"
)

// Key returns the blob key holding a shopper's cart.
func Key(shopper string) string {
	return "cart:" + shopper
}

// Service reads and writes carts through a BlobStore.
type Service struct {
	store    ports.BlobStore
	products ports.ProductSource
	shipping domain.Amount
	logger   *slog.Logger

	mu sync.Mutex
}

// Option configures the Service.
type Option func(*Service)

// WithProducts sets the source used to price cart lines.
func WithProducts(p ports.ProductSource) Option {
	return func(s *Service) {
		s.products = p
	}
}

// WithShipping sets the flat shipping cost.
func WithShipping(a domain.Amount) Option {
	return func(s *Service) {
		s.shipping = a
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a cart service.
func NewService(store ports.BlobStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the shopper's cart. A corrupted blob is logged and treated as empty.
func (s *Service) Get(ctx context.Context, shopper string) (Cart, error) {
	raw, err := s.store.Get(ctx, Key(shopper))
	if errors.Is(err, domain.ErrNotFound) {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, fmt.Errorf("failed to read cart: %w", err)
	}
	c, err := Decode(raw)
	if err != nil {
		s.logger.Warn("Discarding unreadable cart", "shopper", shopper, "err", err)
		return Cart{}, nil
	}
	return c, nil
}

// update applies fn to the shopper's cart and persists the result.
func (s *Service) update(ctx context.Context, shopper string, fn func(*Cart) error) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Get(ctx, shopper)
	if err != nil {
		return Cart{}, err
	}
	if err := fn(&c); err != nil {
		return c, err
	}
	raw, err := c.Encode()
	if err != nil {
		return c, err
	}
	if err := s.store.Set(ctx, Key(shopper), raw); err != nil {
		return c, fmt.Errorf("failed to write cart: %w", err)
	}
	return c, nil
}

// Add puts a line in the cart, merging identical configurations.
func (s *Service) Add(ctx context.Context, shopper string, line domain.CartLine) (Cart, error) {
	if line.ProductID == "" {
		return Cart{}, fmt.Errorf("%w: missing product id", domain.ErrInvalidLine)
	}
	return s.update(ctx, shopper, func(c *Cart) error {
		c.Add(line)
		return nil
	})
}

// AddFunc builds a line while holding the cart lock and adds it like Add.
// build may read state that writers of the cart serialize on, such as the
// shopper's published trade-in.
func (s *Service) AddFunc(ctx context.Context, shopper string, build func(context.Context) (domain.CartLine, error)) (Cart, error) {
	return s.update(ctx, shopper, func(c *Cart) error {
		line, err := build(ctx)
		if err != nil {
			return err
		}
		if line.ProductID == "" {
			return fmt.Errorf("%w: missing product id", domain.ErrInvalidLine)
		}
		c.Add(line)
		return nil
	})
}

// Increase adds one unit of a product.
func (s *Service) Increase(ctx context.Context, shopper, productID string) (Cart, error) {
	return s.update(ctx, shopper, func(c *Cart) error {
		return c.Increase(productID)
	})
}

// Decrease removes one unit of a product, keeping at least one.
func (s *Service) Decrease(ctx context.Context, shopper, productID string) (Cart, error) {
	return s.update(ctx, shopper, func(c *Cart) error {
		return c.Decrease(productID)
	})
}

// Remove drops a product from the cart.
func (s *Service) Remove(ctx context.Context, shopper, productID string) (Cart, error) {
	return s.update(ctx, shopper, func(c *Cart) error {
		return c.Remove(productID)
	})
}

// DetachTradeIn removes trade-in references from the shopper's cart lines.
func (s *Service) DetachTradeIn(ctx context.Context, shopper string) error {
	_, err := s.update(ctx, shopper, func(c *Cart) error {
		c.DetachTradeIn()
		return nil
	})
	return err
}

// Clear deletes the shopper's cart.
func (s *Service) Clear(ctx context.Context, shopper string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, Key(shopper)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Totals prices the shopper's cart using the product source.
func (s *Service) Totals(ctx context.Context, shopper string) (Cart, Totals, error) {
	c, err := s.Get(ctx, shopper)
	if err != nil {
		return Cart{}, Totals{}, err
	}

	prices := make(map[string]domain.Amount)
	if s.products != nil {
		for _, l := range c.Lines {
			if _, ok := prices[l.ProductID]; ok {
				continue
			}
			p, err := s.products.Product(ctx, l.ProductID)
			if err != nil {
				s.logger.Warn("Cannot price cart line", "product_id", l.ProductID, "err", err)
				continue
			}
			prices[l.ProductID] = p.OfferPrice
		}
	}
	return c, c.Totals(prices, s.shipping), nil
}
