// Package rest reads consoles, products and per-console question catalogs from
// the storefront REST API.
//
// The API wraps every payload in a "data" envelope and is loose about types
// (prices arrive as numbers or strings), so responses are decoded into generic
// maps first and then mapped onto domain types with mapstructure.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

// DefaultReuseWindow is how long the questions of a fetched product stay
// available to the next Catalog call for that product.
const DefaultReuseWindow = 5 * time.Second

// Client implements ports.ConsoleSource, ports.ProductSource and ports.CatalogSource.
//
// GET /products/{id} returns a product together with its questions. Selecting
// a console looks the product up and then resolves its catalog, so the
// questions of each product fetch are kept for one Catalog call within the
// reuse window instead of being requested again.
type Client struct {
	baseURL   string
	imageBase string
	http      *http.Client
	logger    *slog.Logger
	reuse     time.Duration

	mu      sync.Mutex
	pending map[string]pendingCatalog
}

type pendingCatalog struct {
	catalog domain.Catalog
	expires time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithImageBase sets the prefix joined to relative image paths.
// Defaults to the API base URL.
func WithImageBase(base string) Option {
	return func(c *Client) {
		c.imageBase = base
	}
}

// WithReuseWindow sets how long fetched questions are kept for the next
// Catalog call. Zero disables reuse.
func WithReuseWindow(d time.Duration) Option {
	return func(c *Client) {
		c.reuse = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for the API rooted at baseURL (e.g. https://api.example.com/api/v1).
func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(baseURL, "/")
	c := &Client{
		baseURL:   base,
		imageBase: base,
		http:      &http.Client{Timeout: DefaultTimeout},
		logger:    logging.NewNop(),
		reuse:     DefaultReuseWindow,
		pending:   make(map[string]pendingCatalog),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// productPayload is the wire shape of a product.
type productPayload struct {
	ID          string          `mapstructure:"_id"`
	Slug        string          `mapstructure:"slug"`
	Name        string          `mapstructure:"name"`
	ProductType string          `mapstructure:"product_type"`
	OfferPrice  float64         `mapstructure:"offer_price"`
	Images      []string        `mapstructure:"images"`
	Models      []pricedPayload `mapstructure:"models"`
	Memories    []pricedPayload `mapstructure:"memories"`
}

type pricedPayload struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
}

func (p productPayload) product() domain.Product {
	out := domain.Product{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Platform:   domain.ParsePlatform(p.ProductType),
		OfferPrice: domain.FromFloat(p.OfferPrice),
		Images:     p.Images,
	}
	for _, m := range p.Models {
		out.Models = append(out.Models, domain.PricedOption{Name: m.Name, Price: domain.FromFloat(m.Price)})
	}
	for _, m := range p.Memories {
		out.Memories = append(out.Memories, domain.PricedOption{Name: m.Name, Price: domain.FromFloat(m.Price)})
	}
	return out
}

// Consoles lists the products of a platform as consoles.
func (c *Client) Consoles(ctx context.Context, platform domain.Platform, limit int) ([]domain.Console, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if platform != domain.PlatformUnknown {
		q.Set("product_type", platform.String())
	}

	var body struct {
		Products []productPayload `mapstructure:"products"`
	}
	if err := c.get(ctx, "/products", q, &body); err != nil {
		return nil, err
	}

	consoles := make([]domain.Console, 0, len(body.Products))
	for _, p := range body.Products {
		prod := p.product()
		if platform != domain.PlatformUnknown && prod.Platform != platform {
			continue
		}
		consoles = append(consoles, prod.Console(c.imageBase))
	}
	return consoles, nil
}

// Console fetches one product as a console.
func (c *Client) Console(ctx context.Context, id string) (domain.Console, error) {
	p, err := c.Product(ctx, id)
	if err != nil {
		return domain.Console{}, err
	}
	return p.Console(c.imageBase), nil
}

// Product fetches a product by slug or id.
func (c *Client) Product(ctx context.Context, slug string) (domain.Product, error) {
	var body struct {
		Product   *productPayload   `mapstructure:"product"`
		Questions []domain.Question `mapstructure:"questions"`
	}
	if err := c.get(ctx, "/products/"+url.PathEscape(slug), nil, &body); err != nil {
		return domain.Product{}, err
	}
	if body.Product == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", slug, domain.ErrNotFound)
	}
	c.keep(domain.Catalog(body.Questions), slug, body.Product.ID)
	return body.Product.product(), nil
}

// Catalog returns the questions attached to a console. An empty list means
// the console has no dedicated catalog.
func (c *Client) Catalog(ctx context.Context, consoleID string) (domain.Catalog, error) {
	if cat, ok := c.take(consoleID); ok {
		c.logger.Debug("Reusing fetched questions", "console_id", consoleID)
		return cat, nil
	}
	var body struct {
		Questions []domain.Question `mapstructure:"questions"`
	}
	if err := c.get(ctx, "/products/"+url.PathEscape(consoleID), nil, &body); err != nil {
		return nil, err
	}
	return domain.Catalog(body.Questions), nil
}

// keep remembers questions under every key the product was addressed by.
func (c *Client) keep(cat domain.Catalog, keys ...string) {
	if c.reuse <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, p := range c.pending {
		if now.After(p.expires) {
			delete(c.pending, id)
		}
	}
	for _, k := range keys {
		if k != "" {
			c.pending[k] = pendingCatalog{catalog: cat, expires: now.Add(c.reuse)}
		}
	}
}

// take returns and forgets the questions kept for id, if still fresh.
func (c *Client) take(id string) (domain.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[id]
	if !ok {
		return nil, false
	}
	delete(c.pending, id)
	if time.Now().After(p.expires) {
		return nil, false
	}
	return p.catalog.Clone(), true
}

// get performs a GET and decodes the "data" envelope into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	case resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("request %s failed: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(envelope.Data); err != nil {
		return fmt.Errorf("failed to map %s payload: %w", path, err)
	}
	c.logger.Debug("REST fetch", "path", path, "status", resp.StatusCode)
	return nil
}
