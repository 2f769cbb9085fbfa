package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
)

// CartDetacher removes trade-in references from a shopper's cart.
type CartDetacher interface {
	DetachTradeIn(ctx context.Context, shopper string) error
}

// Publisher commits wizard results into the shared state.
type Publisher struct {
	container *Container
	cart      CartDetacher
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithCart makes Remove also detach trade-ins from the cart.
func WithCart(c CartDetacher) Option {
	return func(p *Publisher) {
		p.cart = c
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(h domain.LifecycleHooks) Option {
	return func(p *Publisher) {
		p.hooks = h
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = l
	}
}

// NewPublisher creates a publisher writing into the container.
func NewPublisher(container *Container, opts ...Option) *Publisher {
	p := &Publisher{
		container: container,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish builds the published result from a session at the summary step and
// its offer, and commits it in one update.
func (p *Publisher) Publish(ctx context.Context, s *domain.Session, offer domain.Offer) (domain.TradeInState, error) {
	if s.Closed {
		return domain.TradeInState{}, domain.ErrSessionClosed
	}
	if s.Phase() != domain.PhaseSummary || s.Console == nil {
		return domain.TradeInState{}, domain.ErrNotAtSummary
	}

	item := domain.TradeInItem{
		ConsoleID:   s.Console.ID,
		ProductName: s.Console.Name,
		ImagePath:   s.Console.ImageRef,
		Details:     offer.Breakdown,
	}
	state, err := p.container.Commit(ctx, s.Shopper, offer.FinalPrice, item)
	if err != nil {
		return domain.TradeInState{}, err
	}

	p.logger.Info("Trade-in published",
		"session_id", s.ID,
		"shopper", s.Shopper,
		"console_id", s.Console.ID,
		"value", offer.FinalPrice.String(),
	)
	p.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventCommit,
		SessionID: s.ID,
		Shopper:   s.Shopper,
		Platform:  s.Console.Platform,
		Step:      s.Step,
		Value:     s.Console.ID,
		Amount:    offer.FinalPrice,
	})
	return state, nil
}

// Remove clears the shopper's published result and detaches it from the cart.
func (p *Publisher) Remove(ctx context.Context, shopper string) error {
	if err := p.container.Clear(ctx, shopper); err != nil {
		return err
	}
	if p.cart != nil {
		if err := p.cart.DetachTradeIn(ctx, shopper); err != nil {
			return fmt.Errorf("failed to detach trade-in from cart: %w", err)
		}
	}
	p.hooks.Emit(ctx, &domain.Event{
		Type:    domain.EventRemove,
		Shopper: shopper,
	})
	return nil
}

// Snapshot returns the shopper's current published state.
func (p *Publisher) Snapshot(ctx context.Context, shopper string) (domain.TradeInState, error) {
	return p.container.Snapshot(ctx, shopper)
}

// Container returns the underlying shared state.
func (p *Publisher) Container() *Container {
	return p.container
}
