package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/tradein"
	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/runner"
	"github.com/aretw0/tradein/pkg/summary"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the fallback question catalog.
const CatalogURI = "tradein://catalog/default"

// ValuationResponse is returned by every wizard tool.
type ValuationResponse struct {
	View     domain.View      `json:"view" jsonschema_description:"The current wizard state"`
	Consoles []domain.Console `json:"consoles,omitempty" jsonschema_description:"Consoles of the chosen platform (step 0 only)"`
	Summary  string           `json:"summary,omitempty" jsonschema_description:"Markdown valuation summary (summary step only)"`
}

// Service is the part of the trade-in facade exposed as tools.
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
	Catalog(ctx context.Context, consoleID string) (domain.Catalog, string)
}

// Server exposes the valuation wizard as an MCP server.
type Server struct {
	svc       Service
	logger    *slog.Logger
	currency  string
	limit     int
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCurrency sets the symbol used in summaries.
func WithCurrency(c string) Option {
	return func(s *Server) { s.currency = c }
}

// NewServer creates a new MCP Server instance.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:       svc,
		currency:  "€",
		limit:     runner.DefaultConsoleLimit,
		mcpServer: server.NewMCPServer("tradein-mcp", strings.TrimSpace(tradein.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Tool arguments.
type (
	StartArgs struct {
		Shopper  string `json:"shopper"`
		Platform string `json:"platform,omitempty"`
	}
	SessionArgs struct {
		SessionID string `json:"session_id"`
	}
	PlatformArgs struct {
		SessionID string `json:"session_id"`
		Platform  string `json:"platform"`
	}
	ConsoleArgs struct {
		SessionID string `json:"session_id"`
		ConsoleID string `json:"console_id"`
	}
	AnswerArgs struct {
		SessionID  string `json:"session_id"`
		QuestionID string `json:"question_id,omitempty"`
		Value      string `json:"value"`
	}
	ShopperArgs struct {
		Shopper string `json:"shopper"`
	}
)

func (s *Server) registerTools() {
	platforms := make([]string, 0, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		platforms = append(platforms, p.String())
	}

	s.mcpServer.AddTool(mcp.NewTool("start_valuation",
		mcp.WithDescription("Open a trade-in valuation for a shopper. Clears any trade-in the shopper had."),
		mcp.WithString("shopper", mcp.Required(), mcp.Description("Shopper identifier")),
		mcp.WithString("platform", mcp.Enum(platforms...), mcp.Description("Platform to list consoles for (default playstation)")),
		mcp.WithOutputSchema[ValuationResponse](),
	), mcp.NewStructuredToolHandler(s.handleStart))

	s.mcpServer.AddTool(mcp.NewTool("choose_platform",
		mcp.WithDescription("Switch the console list to another platform. Clears the console selection."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithString("platform", mcp.Required(), mcp.Enum(platforms...)),
		mcp.WithOutputSchema[ValuationResponse](),
	), mcp.NewStructuredToolHandler(s.handlePlatform))

	s.mcpServer.AddTool(mcp.NewTool("select_console",
		mcp.WithDescription("Select (or deselect, when already selected) the console to value and load its questions."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithString("console_id", mcp.Required()),
		mcp.WithOutputSchema[ValuationResponse](),
	), mcp.NewStructuredToolHandler(s.handleSelect))

	s.mcpServer.AddTool(mcp.NewTool("answer_question",
		mcp.WithDescription("Answer the current question with one of its option values."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithString("value", mcp.Required(), mcp.Description("Option value")),
		mcp.WithString("question_id", mcp.Description("Question being answered (defaults to the current one)")),
		mcp.WithOutputSchema[ValuationResponse](),
	), mcp.NewStructuredToolHandler(s.handleAnswer))

	s.mcpServer.AddTool(mcp.NewTool("advance",
		mcp.WithDescription("Continue to the next question or step. Does nothing while the current step is incomplete."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithOutputSchema[ValuationResponse](),
	), mcp.NewStructuredToolHandler(s.handleAdvance))

	s.mcpServer.AddTool(mcp.NewTool("cancel_valuation",
		mcp.WithDescription("Discard the valuation without publishing anything."),
		mcp.WithString("session_id", mcp.Required()),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("session_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := s.svc.Cancel(ctx, id); err != nil {
			return mcp.NewToolResultErrorFromErr("cancel failed", err), nil
		}
		return mcp.NewToolResultText("cancelled"), nil
	})

	s.mcpServer.AddTool(mcp.NewTool("commit_valuation",
		mcp.WithDescription("Add the trade-in: publish the offer shown at the summary step."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithOutputSchema[domain.TradeInState](),
	), mcp.NewStructuredToolHandler(s.handleCommit))

	s.mcpServer.AddTool(mcp.NewTool("get_tradein",
		mcp.WithDescription("Read the trade-in currently published for a shopper."),
		mcp.WithString("shopper", mcp.Required()),
		mcp.WithOutputSchema[domain.TradeInState](),
	), mcp.NewStructuredToolHandler(s.handleTradeIn))
}

func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest, args StartArgs) (ValuationResponse, error) {
	shopper, err := runner.SanitizeInput(args.Shopper)
	if err != nil {
		return ValuationResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	if shopper == "" {
		return ValuationResponse{}, fmt.Errorf("shopper is required")
	}
	view, err := s.svc.Open(ctx, shopper)
	if err != nil {
		return ValuationResponse{}, err
	}
	if args.Platform != "" {
		p := domain.ParsePlatform(args.Platform)
		if p == domain.PlatformUnknown {
			return ValuationResponse{}, fmt.Errorf("unknown platform %q", args.Platform)
		}
		if view, err = s.svc.ChoosePlatform(ctx, view.SessionID, p); err != nil {
			return ValuationResponse{}, err
		}
	}
	return s.respond(ctx, view), nil
}

func (s *Server) handlePlatform(ctx context.Context, request mcp.CallToolRequest, args PlatformArgs) (ValuationResponse, error) {
	p := domain.ParsePlatform(args.Platform)
	if p == domain.PlatformUnknown {
		return ValuationResponse{}, fmt.Errorf("unknown platform %q", args.Platform)
	}
	view, err := s.svc.ChoosePlatform(ctx, args.SessionID, p)
	if err != nil {
		return ValuationResponse{}, err
	}
	return s.respond(ctx, view), nil
}

func (s *Server) handleSelect(ctx context.Context, request mcp.CallToolRequest, args ConsoleArgs) (ValuationResponse, error) {
	view, err := s.svc.SelectConsole(ctx, args.SessionID, args.ConsoleID)
	if err != nil {
		return ValuationResponse{}, err
	}
	return s.respond(ctx, view), nil
}

func (s *Server) handleAnswer(ctx context.Context, request mcp.CallToolRequest, args AnswerArgs) (ValuationResponse, error) {
	value, err := runner.SanitizeInput(args.Value)
	if err != nil {
		s.logger.Warn("MCP Answer: Input rejected", "err", err, "size", len(args.Value))
		return ValuationResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	view, err := s.svc.Answer(ctx, args.SessionID, args.QuestionID, value)
	if err != nil {
		return ValuationResponse{}, err
	}
	return s.respond(ctx, view), nil
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (ValuationResponse, error) {
	view, err := s.svc.Advance(ctx, args.SessionID)
	if err != nil {
		return ValuationResponse{}, err
	}
	return s.respond(ctx, view), nil
}

func (s *Server) handleCommit(ctx context.Context, request mcp.CallToolRequest, args SessionArgs) (domain.TradeInState, error) {
	return s.svc.Commit(ctx, args.SessionID)
}

func (s *Server) handleTradeIn(ctx context.Context, request mcp.CallToolRequest, args ShopperArgs) (domain.TradeInState, error) {
	return s.svc.TradeIn(ctx, args.Shopper)
}

func (s *Server) respond(ctx context.Context, view domain.View) ValuationResponse {
	resp := ValuationResponse{View: view}
	switch view.Phase {
	case domain.PhaseSelectConsole:
		resp.Consoles = s.svc.Consoles(ctx, view.Platform, s.limit)
	case domain.PhaseSummary:
		if view.Offer != nil {
			resp.Summary = summary.Markdown(view.Console, *view.Offer, s.currency)
		}
	}
	return resp
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Default question catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		catalog, _ := s.svc.Catalog(ctx, "")
		data, err := json.Marshal(catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
