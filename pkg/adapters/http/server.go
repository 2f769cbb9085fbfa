package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/tradein"
	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/cart"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/product"
	"github.com/aretw0/tradein/pkg/runner"
	"github.com/go-chi/chi/v5"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// Service is the trade-in facade served over HTTP. *tradein.Service implements it.
type Service interface {
	Open(ctx context.Context, shopper string) (domain.View, error)
	View(ctx context.Context, sessionID string) (domain.View, error)
	Consoles(ctx context.Context, platform domain.Platform, limit int) []domain.Console
	ChoosePlatform(ctx context.Context, sessionID string, p domain.Platform) (domain.View, error)
	SelectConsole(ctx context.Context, sessionID, consoleID string) (domain.View, error)
	Answer(ctx context.Context, sessionID, questionID, value string) (domain.View, error)
	Advance(ctx context.Context, sessionID string) (domain.View, error)
	Cancel(ctx context.Context, sessionID string) error
	Commit(ctx context.Context, sessionID string) (domain.TradeInState, error)

	TradeIn(ctx context.Context, shopper string) (domain.TradeInState, error)
	RemoveTradeIn(ctx context.Context, shopper string) error
	Subscribe(shopper string) (<-chan domain.TradeInState, func())

	Quote(ctx context.Context, shopper, slug string, sel product.Selection) (product.Quote, error)
	AddToCart(ctx context.Context, shopper, productID string, sel product.Selection) (cart.Cart, error)
	Cart(ctx context.Context, shopper string) (cart.Cart, cart.Totals, error)
	IncreaseItem(ctx context.Context, shopper, productID string) (cart.Cart, error)
	DecreaseItem(ctx context.Context, shopper, productID string) (cart.Cart, error)
	RemoveItem(ctx context.Context, shopper, productID string) (cart.Cart, error)
	CompletePayment(ctx context.Context, shopper string) error
}

// Server implements ServerInterface over a Service.
type Server struct {
	Service      Service
	Logger       *slog.Logger
	ConsoleLimit int
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler built by NewHandler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger       *slog.Logger
	metrics      http.Handler
	consoleLimit int
}

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(c *handlerConfig) {
		c.metrics = h
	}
}

// WithConsoleLimit caps /consoles when the request does not pass a limit.
func WithConsoleLimit(n int) Option {
	return func(c *handlerConfig) {
		c.consoleLimit = n
	}
}

// NewHandler creates the HTTP handler for the service.
func NewHandler(svc Service, opts ...Option) http.Handler {
	cfg := handlerConfig{consoleLimit: runner.DefaultConsoleLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	server := &Server{
		Service:      svc,
		Logger:       cfg.logger,
		ConsoleLimit: cfg.consoleLimit,
	}
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if cfg.metrics != nil {
		r.Handle("/metrics", cfg.metrics)
	}

	handler := HandlerWithOptions(server, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			server.fail(w, r, "BindParameters", fmt.Errorf("%w: %v", errBadRequest, err))
		},
	})
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Trade-in API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// CartResponse is the body of every cart operation.
type CartResponse struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals *cart.Totals      `json:"totals,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "tradein-http",
		"version":     strings.TrimSpace(tradein.Version),
		"api_version": apiVersion,
	})
}

// ListConsoles handles the GET /consoles request. An unreachable catalog
// yields an empty list.
func (s *Server) ListConsoles(w http.ResponseWriter, r *http.Request, params ListConsolesParams) {
	platform := domain.PlatformPlaystation
	if params.Platform != nil {
		platform = domain.ParsePlatform(string(*params.Platform))
		if platform == domain.PlatformUnknown {
			s.fail(w, r, "ListConsoles", fmt.Errorf("unknown platform %q: %w", *params.Platform, errBadRequest))
			return
		}
	}
	limit := s.ConsoleLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}
	consoles := s.Service.Consoles(r.Context(), platform, limit)
	if consoles == nil {
		consoles = []domain.Console{}
	}
	writeJSON(w, http.StatusOK, consoles)
}

// OpenSession handles the POST /sessions request.
func (s *Server) OpenSession(w http.ResponseWriter, r *http.Request) {
	var body OpenSessionJSONRequestBody
	if !s.decode(w, r, "OpenSession", &body) {
		return
	}
	shopper, err := runner.SanitizeInput(body.Shopper)
	if err == nil && shopper == "" {
		err = errors.New("shopper is required")
	}
	if err != nil {
		s.fail(w, r, "OpenSession", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	view, err := s.Service.Open(r.Context(), shopper)
	if err != nil {
		s.fail(w, r, "OpenSession", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	view, err := s.Service.View(r.Context(), id)
	s.respondView(w, r, "GetSession", id, view, err)
}

// ChoosePlatform handles the POST /sessions/{id}/platform request.
func (s *Server) ChoosePlatform(w http.ResponseWriter, r *http.Request, id string) {
	var body ChoosePlatformJSONRequestBody
	if !s.decode(w, r, "ChoosePlatform", &body) {
		return
	}
	p := domain.ParsePlatform(body.Platform)
	if p == domain.PlatformUnknown {
		s.fail(w, r, "ChoosePlatform", fmt.Errorf("unknown platform %q: %w", body.Platform, errBadRequest))
		return
	}
	view, err := s.Service.ChoosePlatform(r.Context(), id, p)
	s.respondView(w, r, "ChoosePlatform", id, view, err)
}

// SelectConsole handles the POST /sessions/{id}/console request. The
// catalog is resolved before the response is written.
func (s *Server) SelectConsole(w http.ResponseWriter, r *http.Request, id string) {
	var body SelectConsoleJSONRequestBody
	if !s.decode(w, r, "SelectConsole", &body) {
		return
	}
	consoleID, err := runner.SanitizeInput(deref(body.ConsoleId))
	if err != nil {
		s.fail(w, r, "SelectConsole", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	view, err := s.Service.SelectConsole(r.Context(), id, consoleID)
	s.respondView(w, r, "SelectConsole", id, view, err)
}

// AnswerQuestion handles the POST /sessions/{id}/answer request. Without a
// question_id the answer targets the current question.
func (s *Server) AnswerQuestion(w http.ResponseWriter, r *http.Request, id string) {
	var body AnswerQuestionJSONRequestBody
	if !s.decode(w, r, "AnswerQuestion", &body) {
		return
	}
	value, err := runner.SanitizeInput(body.Value)
	if err != nil {
		s.fail(w, r, "AnswerQuestion", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	view, err := s.Service.Answer(r.Context(), id, deref(body.QuestionId), value)
	s.respondView(w, r, "AnswerQuestion", id, view, err)
}

// AdvanceSession handles the POST /sessions/{id}/advance request.
func (s *Server) AdvanceSession(w http.ResponseWriter, r *http.Request, id string) {
	view, err := s.Service.Advance(r.Context(), id)
	s.respondView(w, r, "AdvanceSession", id, view, err)
}

// CancelSession handles the POST /sessions/{id}/cancel request.
func (s *Server) CancelSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Service.Cancel(r.Context(), id); err != nil {
		s.fail(w, r, "CancelSession", err, "session_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CommitSession handles the POST /sessions/{id}/commit request.
func (s *Server) CommitSession(w http.ResponseWriter, r *http.Request, id string) {
	state, err := s.Service.Commit(r.Context(), id)
	if err != nil {
		s.fail(w, r, "CommitSession", err, "session_id", id)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// GetTradeIn handles the GET /shoppers/{shopper}/tradein request.
func (s *Server) GetTradeIn(w http.ResponseWriter, r *http.Request, shopper string) {
	state, err := s.Service.TradeIn(r.Context(), shopper)
	if err != nil {
		s.fail(w, r, "GetTradeIn", err, "shopper", shopper)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// RemoveTradeIn handles the DELETE /shoppers/{shopper}/tradein request.
func (s *Server) RemoveTradeIn(w http.ResponseWriter, r *http.Request, shopper string) {
	if err := s.Service.RemoveTradeIn(r.Context(), shopper); err != nil {
		s.fail(w, r, "RemoveTradeIn", err, "shopper", shopper)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCart handles the GET /shoppers/{shopper}/cart request.
func (s *Server) GetCart(w http.ResponseWriter, r *http.Request, shopper string) {
	c, totals, err := s.Service.Cart(r.Context(), shopper)
	if err != nil {
		s.fail(w, r, "GetCart", err, "shopper", shopper)
		return
	}
	writeJSON(w, http.StatusOK, CartResponse{Lines: lines(c), Totals: &totals})
}

// AddCartLine handles the POST /shoppers/{shopper}/cart request.
func (s *Server) AddCartLine(w http.ResponseWriter, r *http.Request, shopper string) {
	var body AddCartLineJSONRequestBody
	if !s.decode(w, r, "AddCartLine", &body) {
		return
	}
	if strings.TrimSpace(body.ProductId) == "" {
		s.fail(w, r, "AddCartLine", fmt.Errorf("productId is required: %w", errBadRequest))
		return
	}
	sel := product.Selection{
		Model:     deref(body.Model),
		Memory:    deref(body.Memory),
		Condition: deref(body.Condition),
	}
	if body.Controllers != nil {
		sel.Controllers = *body.Controllers
	}
	c, err := s.Service.AddToCart(r.Context(), shopper, body.ProductId, sel)
	s.respondCart(w, r, "AddCartLine", shopper, c, err)
}

// IncreaseCartLine handles the POST /shoppers/{shopper}/cart/{product}/increase request.
func (s *Server) IncreaseCartLine(w http.ResponseWriter, r *http.Request, shopper string, productID string) {
	c, err := s.Service.IncreaseItem(r.Context(), shopper, productID)
	s.respondCart(w, r, "IncreaseCartLine", shopper, c, err)
}

// DecreaseCartLine handles the POST /shoppers/{shopper}/cart/{product}/decrease request.
func (s *Server) DecreaseCartLine(w http.ResponseWriter, r *http.Request, shopper string, productID string) {
	c, err := s.Service.DecreaseItem(r.Context(), shopper, productID)
	s.respondCart(w, r, "DecreaseCartLine", shopper, c, err)
}

// RemoveCartLine handles the DELETE /shoppers/{shopper}/cart/{product} request.
func (s *Server) RemoveCartLine(w http.ResponseWriter, r *http.Request, shopper string, productID string) {
	c, err := s.Service.RemoveItem(r.Context(), shopper, productID)
	s.respondCart(w, r, "RemoveCartLine", shopper, c, err)
}

// CompletePayment handles the POST /shoppers/{shopper}/payment/success request.
func (s *Server) CompletePayment(w http.ResponseWriter, r *http.Request, shopper string) {
	if err := s.Service.CompletePayment(r.Context(), shopper); err != nil {
		s.fail(w, r, "CompletePayment", err, "shopper", shopper)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QuoteProduct handles the GET /products/{product}/quote request.
func (s *Server) QuoteProduct(w http.ResponseWriter, r *http.Request, slug string, params QuoteProductParams) {
	sel := product.Selection{
		Model:     deref(params.Model),
		Memory:    deref(params.Memory),
		Condition: deref(params.Condition),
	}
	if params.Controllers != nil {
		sel.Controllers = *params.Controllers
	}

	quote, err := s.Service.Quote(r.Context(), deref(params.Shopper), slug, sel)
	if err != nil {
		s.fail(w, r, "QuoteProduct", err, "product", slug)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// SubscribeEvents handles the GET /events request (SSE). The current state
// is sent first, then every published change for the shopper.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	ch, cancel := s.Service.Subscribe(params.Shopper)
	defer cancel()

	current, err := s.Service.TradeIn(r.Context(), params.Shopper)
	if err != nil {
		s.fail(w, r, "SubscribeEvents", err, "shopper", params.Shopper)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.Logger.Info("SSE: Subscribing to trade-in updates", "shopper", params.Shopper)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	writeEvent(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected", "shopper", params.Shopper)
			return
		case state, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, state)
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, state domain.TradeInState) {
	data, err := json.Marshal(state)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

// errBadRequest marks malformed requests.
var errBadRequest = errors.New("bad request")

func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		s.fail(w, r, op, fmt.Errorf("invalid request body: %w", errBadRequest))
		return false
	}
	return true
}

func (s *Server) respondView(w http.ResponseWriter, r *http.Request, op, id string, view domain.View, err error) {
	if err != nil {
		s.fail(w, r, op, err, "session_id", id)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) respondCart(w http.ResponseWriter, r *http.Request, op, shopper string, c cart.Cart, err error) {
	if err != nil {
		s.fail(w, r, op, err, "shopper", shopper)
		return
	}
	writeJSON(w, http.StatusOK, CartResponse{Lines: lines(c)})
}

// fail maps err to a status code and writes the JSON error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error, attrs ...any) {
	status := statusFor(err)
	attrs = append([]any{"op", op, "status", status, "err", err}, attrs...)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("Request failed", attrs...)
	} else {
		s.Logger.Warn("Request rejected", attrs...)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidLine),
		errors.Is(err, product.ErrUnknownOption):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAnswer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotAtSummary),
		errors.Is(err, domain.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func lines(c cart.Cart) []domain.CartLine {
	if c.Lines == nil {
		return []domain.CartLine{}
	}
	return c.Lines
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "err", err)
	}
}
