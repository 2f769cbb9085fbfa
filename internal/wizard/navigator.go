// Package wizard implements the step navigator of the trade-in wizard.
//
// The Navigator is stateless: every operation takes a session snapshot and
// returns a new one, leaving the input untouched. Invalid transitions are
// no-ops, never errors, so hosts can simply disable the forward action.
package wizard

import (
	"context"
	"log/slog"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/pricing"
	"github.com/aretw0/tradein/pkg/summary"
)

// Navigator owns the step/question counters and the forward-only progression rule.
type Navigator struct {
	calc   pricing.Calculator
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Navigator.
type Option func(*Navigator)

// WithCalculator sets the pricing calculator used at the summary step.
func WithCalculator(c pricing.Calculator) Option {
	return func(n *Navigator) {
		n.calc = c
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(h domain.LifecycleHooks) Option {
	return func(n *Navigator) {
		n.hooks = h
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = l
	}
}

// New creates a Navigator. The default calculator uses pricing.DefaultFloor.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		calc:   pricing.New(pricing.DefaultFloor),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Calculator returns the pricing calculator in use.
func (n *Navigator) Calculator() pricing.Calculator {
	return n.calc
}

// ChoosePlatform switches the console list filter. Only valid at step 0.
// Changing platform drops the current console selection.
func (n *Navigator) ChoosePlatform(ctx context.Context, s *domain.Session, p domain.Platform) *domain.Session {
	if s.Closed || s.Step != domain.StepSelectConsole || s.Platform == p {
		return s
	}
	next := s.Clone()
	next.Platform = p
	if next.Console != nil {
		n.clearSelection(next)
	}
	return next
}

// SelectConsole records the console chosen at step 0 and marks its catalog
// as pending. Selecting the already selected console deselects it.
// The returned token must be passed to ResolveCatalog; it is 0 when no
// catalog fetch is needed.
func (n *Navigator) SelectConsole(ctx context.Context, s *domain.Session, c domain.Console) (*domain.Session, uint64) {
	if s.Closed || s.Step != domain.StepSelectConsole || c.ID == "" {
		return s, 0
	}

	next := s.Clone()
	if s.Console != nil && s.Console.ID == c.ID {
		n.clearSelection(next)
		return next, 0
	}

	console := c
	next.Console = &console
	next.Catalog = nil
	next.CatalogSource = ""
	next.CatalogPending = true
	next.CatalogGeneration++

	n.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventConsoleSelect,
		SessionID: s.ID,
		Shopper:   s.Shopper,
		Platform:  s.Platform,
		Value:     c.ID,
		Amount:    c.BasePrice,
	})
	return next, next.CatalogGeneration
}

// ResolveCatalog applies a fetched catalog. The result is discarded (ok=false)
// when token is stale, i.e. a newer selection or a cancel happened after the
// fetch was started.
func (n *Navigator) ResolveCatalog(ctx context.Context, s *domain.Session, token uint64, c domain.Catalog, source string) (*domain.Session, bool) {
	if s.Closed || token == 0 || token != s.CatalogGeneration || s.Console == nil || !s.CatalogPending {
		n.logger.Debug("Discarding stale catalog",
			"session_id", s.ID,
			"token", token,
			"generation", s.CatalogGeneration,
		)
		return s, false
	}

	next := s.Clone()
	next.Catalog = c.Clone()
	next.CatalogSource = source
	next.CatalogPending = false

	n.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventCatalogResolve,
		SessionID: s.ID,
		Shopper:   s.Shopper,
		Platform:  s.Platform,
		Value:     s.Console.ID,
		Source:    source,
	})
	return next, true
}

// CurrentQuestion returns the question at (Step, QuestionIndex), or nil
// outside the question phase.
func (n *Navigator) CurrentQuestion(s *domain.Session) *domain.Question {
	if s.Phase() != domain.PhaseQuestion {
		return nil
	}
	qs := s.Catalog.ForStep(s.Step)
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(qs) {
		return nil
	}
	q := qs[s.QuestionIndex]
	return &q
}

// Answer records the selected option for the current question.
// An empty questionID targets the current question.
func (n *Navigator) Answer(ctx context.Context, s *domain.Session, questionID, value string) (*domain.Session, error) {
	if s.Closed {
		return s, domain.ErrSessionClosed
	}
	q := n.CurrentQuestion(s)
	if q == nil || (questionID != "" && questionID != q.ID) {
		return s, domain.ErrInvalidAnswer
	}
	if _, ok := q.Option(value); !ok {
		return s, domain.ErrInvalidAnswer
	}

	next := s.Clone()
	next.Answers[q.ID] = value

	n.hooks.Emit(ctx, &domain.Event{
		Type:       domain.EventAnswer,
		SessionID:  s.ID,
		Shopper:    s.Shopper,
		Platform:   s.Platform,
		Step:       s.Step,
		QuestionID: q.ID,
		Value:      value,
	})
	return next, nil
}

// CanAdvance reports whether Advance would move the session forward.
func (n *Navigator) CanAdvance(s *domain.Session) bool {
	switch s.Phase() {
	case domain.PhaseSelectConsole:
		return s.Console != nil && !s.CatalogPending
	case domain.PhaseQuestion:
		q := n.CurrentQuestion(s)
		if q == nil {
			return true
		}
		_, ok := q.Option(s.Answers[q.ID])
		return ok
	default:
		return false
	}
}

// Advance moves to the next question, the next non-empty step or the summary.
// It returns the input unchanged (moved=false) when the move is not allowed.
func (n *Navigator) Advance(ctx context.Context, s *domain.Session) (*domain.Session, bool) {
	if !n.CanAdvance(s) {
		return s, false
	}

	next := s.Clone()
	if s.Step == domain.StepSelectConsole {
		n.enterStep(ctx, next, 1)
		return next, true
	}

	qs := s.Catalog.ForStep(s.Step)
	if s.QuestionIndex < len(qs)-1 {
		next.QuestionIndex++
		return next, true
	}
	n.enterStep(ctx, next, s.Step+1)
	return next, true
}

// enterStep moves to step, skipping steps without questions, and stops at FINAL.
func (n *Navigator) enterStep(ctx context.Context, s *domain.Session, step int) {
	final := s.FinalStep()
	target := final
	for _, candidate := range s.Catalog.StepNumbers() {
		if candidate >= step && candidate < final {
			target = candidate
			break
		}
	}
	if target > step {
		n.logger.Debug("Skipping empty steps", "session_id", s.ID, "from", step, "to", target)
	}
	step = target
	s.Step = step
	s.QuestionIndex = 0

	n.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventStepEnter,
		SessionID: s.ID,
		Shopper:   s.Shopper,
		Platform:  s.Platform,
		Step:      step,
	})
}

// Cancel resets the session to console selection with no answers.
// It always succeeds and invalidates in-flight catalog fetches.
func (n *Navigator) Cancel(ctx context.Context, s *domain.Session) *domain.Session {
	next := s.Clone()
	next.Step = domain.StepSelectConsole
	next.QuestionIndex = 0
	next.Answers = make(domain.AnswerSet)
	n.clearSelection(next)

	n.hooks.Emit(ctx, &domain.Event{
		Type:      domain.EventCancel,
		SessionID: s.ID,
		Shopper:   s.Shopper,
		Platform:  s.Platform,
		Step:      s.Step,
	})
	return next
}

func (n *Navigator) clearSelection(s *domain.Session) {
	s.Console = nil
	s.Catalog = nil
	s.CatalogSource = ""
	s.CatalogPending = false
	s.CatalogGeneration++
}

// Offer computes the valuation. ok is false outside the summary step.
func (n *Navigator) Offer(s *domain.Session) (domain.Offer, bool) {
	if s.Phase() != domain.PhaseSummary || s.Console == nil {
		return domain.Offer{}, false
	}
	offer := n.calc.Offer(s.Console.BasePrice, s.Answers, s.Catalog)
	return summary.Complete(offer, s.Catalog, s.Answers), true
}
