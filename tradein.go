package tradein

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/internal/wizard"
	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/cart"
	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/ports"
	"github.com/aretw0/tradein/pkg/pricing"
	"github.com/aretw0/tradein/pkg/product"
	"github.com/aretw0/tradein/pkg/publish"
	"github.com/aretw0/tradein/pkg/session"
	"github.com/google/uuid"
)

// Service is the high-level entry point of the trade-in wizard.
// It ties the navigator, the catalog resolver, the session manager, the
// result publisher and the cart together behind one API that every front end
// (HTTP, MCP, line runner, TUI) drives.
type Service struct {
	sessions  *session.Manager
	navigator *wizard.Navigator
	resolver  *catalog.Resolver
	publisher *publish.Publisher
	carts     *cart.Service

	consoles ports.ConsoleSource
	products ports.ProductSource
	catalogs ports.CatalogSource

	sessionStore ports.SessionStore
	resultStore  ports.ResultStore
	blobStore    ports.BlobStore
	locker       ports.DistributedLocker

	fallback domain.Catalog
	floor    int
	shipping domain.Amount
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	newID    func() string
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithSessionStore sets the wizard session store (default: in-memory).
func WithSessionStore(s ports.SessionStore) Option {
	return func(svc *Service) {
		svc.sessionStore = s
	}
}

// WithResultStore sets where published trade-in results live (default: in-memory).
func WithResultStore(s ports.ResultStore) Option {
	return func(svc *Service) {
		svc.resultStore = s
	}
}

// WithBlobStore sets the cart blob store (default: in-memory).
func WithBlobStore(s ports.BlobStore) Option {
	return func(svc *Service) {
		svc.blobStore = s
	}
}

// WithLocker enables distributed locking of wizard sessions.
func WithLocker(l ports.DistributedLocker) Option {
	return func(svc *Service) {
		svc.locker = l
	}
}

// WithConsoleSource sets the console list source.
func WithConsoleSource(s ports.ConsoleSource) Option {
	return func(svc *Service) {
		svc.consoles = s
	}
}

// WithProductSource sets the product source used by quotes and cart totals.
func WithProductSource(s ports.ProductSource) Option {
	return func(svc *Service) {
		svc.products = s
	}
}

// WithCatalogSource sets the per-console catalog source.
func WithCatalogSource(s ports.CatalogSource) Option {
	return func(svc *Service) {
		svc.catalogs = s
	}
}

// WithFallbackCatalog replaces the built-in default catalog.
func WithFallbackCatalog(c domain.Catalog) Option {
	return func(svc *Service) {
		svc.fallback = c
	}
}

// WithFloor sets the minimum trade-in value in whole currency units.
func WithFloor(units int) Option {
	return func(svc *Service) {
		svc.floor = units
	}
}

// WithShipping sets the flat shipping cost added to cart totals.
func WithShipping(a domain.Amount) Option {
	return func(svc *Service) {
		svc.shipping = a
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(svc *Service) {
		svc.hooks = svc.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(svc *Service) {
		svc.logger = logger
	}
}

// WithIDGenerator overrides how session ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(svc *Service) {
		svc.newID = fn
	}
}

// New builds a Service. Every store defaults to its in-memory adapter.
func New(opts ...Option) (*Service, error) {
	svc := &Service{
		floor: pricing.DefaultFloor,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = logging.NewNop()
	}
	if svc.sessionStore == nil {
		svc.sessionStore = memory.NewStore()
	}
	if svc.resultStore == nil {
		svc.resultStore = memory.NewResultStore()
	}
	if svc.blobStore == nil {
		svc.blobStore = memory.NewBlobStore()
	}
	if svc.fallback == nil {
		svc.fallback = catalog.Default()
	}
	if err := catalog.Validate(svc.fallback); err != nil {
		return nil, fmt.Errorf("invalid fallback catalog: %w", err)
	}
	if svc.floor < 0 {
		return nil, fmt.Errorf("floor must be non-negative, got %d", svc.floor)
	}

	sessionOpts := []session.Option{session.WithLogger(svc.logger)}
	if svc.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(svc.locker))
	}
	svc.sessions = session.NewManager(svc.sessionStore, sessionOpts...)

	svc.navigator = wizard.New(
		wizard.WithCalculator(pricing.New(svc.floor)),
		wizard.WithLifecycleHooks(svc.hooks),
		wizard.WithLogger(svc.logger),
	)
	svc.resolver = catalog.NewResolver(svc.catalogs,
		catalog.WithFallback(svc.fallback),
		catalog.WithResolverLogger(svc.logger),
	)
	svc.carts = cart.NewService(svc.blobStore,
		cart.WithProducts(svc.products),
		cart.WithShipping(svc.shipping),
		cart.WithLogger(svc.logger),
	)
	svc.publisher = publish.NewPublisher(
		publish.NewContainer(svc.resultStore, svc.logger),
		publish.WithCart(svc.carts),
		publish.WithLifecycleHooks(svc.hooks),
		publish.WithLogger(svc.logger),
	)
	return svc, nil
}

// Open starts a new wizard for the shopper. Any previously published
// trade-in of the shopper is cleared first.
func (s *Service) Open(ctx context.Context, shopper string) (domain.View, error) {
	if err := s.publisher.Remove(ctx, shopper); err != nil {
		return domain.View{}, fmt.Errorf("failed to clear previous trade-in: %w", err)
	}

	sess := domain.NewSession(s.newID(), shopper)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return domain.View{}, err
	}

	s.logger.Debug("Wizard opened", "session_id", sess.ID, "shopper", shopper)
	s.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventSessionOpen,
		SessionID: sess.ID,
		Shopper:   shopper,
		Platform:  sess.Platform,
	})
	return s.navigator.Render(sess), nil
}

// View renders the current state of a wizard session.
func (s *Service) View(ctx context.Context, sessionID string) (domain.View, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return domain.View{}, err
	}
	return s.navigator.Render(sess), nil
}

// Consoles lists the consoles of a platform. Source failures degrade to an
// empty list.
func (s *Service) Consoles(ctx context.Context, platform domain.Platform, limit int) []domain.Console {
	if s.consoles == nil {
		return []domain.Console{}
	}
	list, err := s.consoles.Consoles(ctx, platform, limit)
	if err != nil {
		s.logger.Warn("Console list unavailable", "platform", platform.String(), "err", err)
		return []domain.Console{}
	}
	return list
}

// ChoosePlatform switches the console list filter of the wizard.
func (s *Service) ChoosePlatform(ctx context.Context, sessionID string, p domain.Platform) (domain.View, error) {
	return s.update(ctx, sessionID, func(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
		return s.navigator.ChoosePlatform(ctx, sess, p), nil
	})
}

// SelectConsole selects (or deselects) a console by id and resolves its
// question catalog. The catalog fetch runs outside the session lock; its
// result only applies if no newer selection happened meanwhile.
func (s *Service) SelectConsole(ctx context.Context, sessionID, consoleID string) (domain.View, error) {
	if consoleID == "" {
		return s.View(ctx, sessionID)
	}
	if s.consoles == nil {
		return domain.View{}, fmt.Errorf("console %s: %w", consoleID, domain.ErrNotFound)
	}
	console, err := s.consoles.Console(ctx, consoleID)
	if err != nil {
		return domain.View{}, fmt.Errorf("failed to look up console %s: %w", consoleID, err)
	}
	return s.SelectConsoleValue(ctx, sessionID, console)
}

// SelectConsoleValue is SelectConsole for callers that already hold the console record.
func (s *Service) SelectConsoleValue(ctx context.Context, sessionID string, console domain.Console) (domain.View, error) {
	var token uint64
	sess, err := s.sessions.Update(ctx, sessionID, func(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
		next, t := s.navigator.SelectConsole(ctx, sess, console)
		token = t
		return next, nil
	})
	if err != nil {
		return domain.View{}, err
	}
	if token == 0 {
		return s.navigator.Render(sess), nil
	}

	cat, source := s.resolver.Resolve(ctx, console.ID)

	return s.update(ctx, sessionID, func(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
		next, applied := s.navigator.ResolveCatalog(ctx, sess, token, cat, source)
		if !applied {
			s.logger.Debug("Discarding stale catalog", "session_id", sessionID, "console_id", console.ID)
		}
		return next, nil
	})
}

// Answer records the selected option for the current question.
func (s *Service) Answer(ctx context.Context, sessionID, questionID, value string) (domain.View, error) {
	return s.update(ctx, sessionID, func(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
		return s.navigator.Answer(ctx, sess, questionID, value)
	})
}

// Advance moves the wizard forward when the current step allows it.
func (s *Service) Advance(ctx context.Context, sessionID string) (domain.View, error) {
	return s.update(ctx, sessionID, func(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
		next, _ := s.navigator.Advance(ctx, sess)
		return next, nil
	})
}

// Cancel resets and discards the wizard. A missing session is not an error.
func (s *Service) Cancel(ctx context.Context, sessionID string) error {
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		store := s.sessions.Store()
		sess, err := store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		return s.discard(ctx, store, s.navigator.Cancel(ctx, sess))
	})
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	return err
}

// Commit publishes the valuation of a wizard at the summary step and closes
// the wizard.
func (s *Service) Commit(ctx context.Context, sessionID string) (domain.TradeInState, error) {
	var state domain.TradeInState
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		store := s.sessions.Store()
		sess, err := store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		if sess.Closed {
			return domain.ErrSessionClosed
		}
		offer, ok := s.navigator.Offer(sess)
		if !ok {
			return domain.ErrNotAtSummary
		}
		state, err = s.publisher.Publish(ctx, sess, offer)
		if err != nil {
			return err
		}
		return s.discard(ctx, store, sess)
	})
	return state, err
}

// discard deletes a finished session. When the delete fails the session is
// saved closed instead, so it cannot be committed or answered again.
func (s *Service) discard(ctx context.Context, store ports.SessionStore, sess *domain.Session) error {
	err := store.Delete(ctx, sess.ID)
	if err == nil {
		return nil
	}
	sess.Closed = true
	if saveErr := store.Save(ctx, sess.ID, sess); saveErr != nil {
		return fmt.Errorf("failed to discard session %s: %w", sess.ID, errors.Join(err, saveErr))
	}
	s.logger.Warn("Session kept closed after failed delete", "session_id", sess.ID, "err", err)
	return nil
}

// TradeIn returns the shopper's published trade-in.
func (s *Service) TradeIn(ctx context.Context, shopper string) (domain.TradeInState, error) {
	return s.publisher.Snapshot(ctx, shopper)
}

// RemoveTradeIn clears the shopper's trade-in and detaches it from the cart.
func (s *Service) RemoveTradeIn(ctx context.Context, shopper string) error {
	return s.publisher.Remove(ctx, shopper)
}

// Subscribe streams changes of the shopper's published trade-in.
func (s *Service) Subscribe(shopper string) (<-chan domain.TradeInState, func()) {
	return s.publisher.Container().Subscribe(shopper)
}

// Catalog resolves the question catalog a console would use.
func (s *Service) Catalog(ctx context.Context, consoleID string) (domain.Catalog, string) {
	return s.resolver.Resolve(ctx, consoleID)
}

// Product fetches a product by slug.
func (s *Service) Product(ctx context.Context, slug string) (domain.Product, error) {
	if s.products == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", slug, domain.ErrNotFound)
	}
	return s.products.Product(ctx, slug)
}

// Quote prices a product configuration, net of the shopper's active trade-in.
func (s *Service) Quote(ctx context.Context, shopper, slug string, sel product.Selection) (product.Quote, error) {
	p, err := s.Product(ctx, slug)
	if err != nil {
		return product.Quote{}, err
	}
	state, err := s.publisher.Snapshot(ctx, shopper)
	if err != nil {
		return product.Quote{}, err
	}
	return product.Price(p, sel, state)
}

// AddToCart adds a configured product to the shopper's cart, attaching the
// active trade-in when there is one. The trade-in is read under the cart
// lock so a concurrent removal cannot be overwritten by a stale line.
func (s *Service) AddToCart(ctx context.Context, shopper, productID string, sel product.Selection) (cart.Cart, error) {
	return s.carts.AddFunc(ctx, shopper, func(ctx context.Context) (domain.CartLine, error) {
		state, err := s.publisher.Snapshot(ctx, shopper)
		if err != nil {
			return domain.CartLine{}, err
		}
		var item *domain.TradeInItem
		if state.Active {
			item = state.Item
		}
		return sel.Line(productID, item), nil
	})
}

// Cart returns the shopper's cart with its totals.
func (s *Service) Cart(ctx context.Context, shopper string) (cart.Cart, cart.Totals, error) {
	return s.carts.Totals(ctx, shopper)
}

// IncreaseItem bumps the quantity of a cart line.
func (s *Service) IncreaseItem(ctx context.Context, shopper, productID string) (cart.Cart, error) {
	return s.carts.Increase(ctx, shopper, productID)
}

// DecreaseItem lowers the quantity of a cart line, never below one.
func (s *Service) DecreaseItem(ctx context.Context, shopper, productID string) (cart.Cart, error) {
	return s.carts.Decrease(ctx, shopper, productID)
}

// RemoveItem drops a cart line.
func (s *Service) RemoveItem(ctx context.Context, shopper, productID string) (cart.Cart, error) {
	return s.carts.Remove(ctx, shopper, productID)
}

// CompletePayment empties the cart and clears the trade-in once a payment succeeded.
func (s *Service) CompletePayment(ctx context.Context, shopper string) error {
	if err := s.carts.Clear(ctx, shopper); err != nil {
		return err
	}
	if err := s.publisher.Container().Clear(ctx, shopper); err != nil {
		return err
	}
	s.logger.Info("Payment completed", "shopper", shopper)
	return nil
}

// Navigator exposes the wizard state machine for front ends that keep
// sessions locally.
func (s *Service) Navigator() *wizard.Navigator {
	return s.navigator
}

// Sessions returns the session manager.
func (s *Service) Sessions() *session.Manager {
	return s.sessions
}

func (s *Service) update(ctx context.Context, sessionID string, fn func(context.Context, *domain.Session) (*domain.Session, error)) (domain.View, error) {
	sess, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return domain.View{}, err
	}
	return s.navigator.Render(sess), nil
}
