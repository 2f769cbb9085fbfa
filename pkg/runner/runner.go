package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/summary"
)

// Runner handles the interaction loop of one trade-in valuation using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	Wizard Wizard

	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Shopper      string
	Currency     string
	ConsoleLimit int

	signals bool
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for terminal rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// New creates a Runner for the given wizard.
func New(w Wizard, opts ...Option) *Runner {
	r := &Runner{
		Wizard:       w,
		Shopper:      "guest",
		Currency:     "€",
		ConsoleLimit: DefaultConsoleLimit,
		signals:      true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// loop is the mutable state of one Run.
type loop struct {
	view     domain.View
	consoles []domain.Console
	result   *domain.TradeInState
	done     bool
}

// Run opens a wizard and drives it until the shopper adds, skips or quits the
// trade-in, or the input ends. It returns the published result, which is
// inactive unless the shopper added the trade-in.
func (r *Runner) Run(ctx context.Context) (domain.TradeInState, error) {
	handler := r.resolveHandler()

	var signals *SignalManager
	if r.signals {
		signals = NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	view, err := r.Wizard.Open(ctx, r.Shopper)
	if err != nil {
		return domain.TradeInState{}, fmt.Errorf("failed to open wizard: %w", err)
	}
	st := &loop{
		view:     view,
		consoles: r.Wizard.Consoles(ctx, view.Platform, r.ConsoleLimit),
	}
	r.Logger.Debug("Runner started", "session_id", view.SessionID, "shopper", r.Shopper)

	for {
		if err := handler.Output(ctx, r.screen(st)); err != nil {
			r.discard(st.view.SessionID)
			return domain.TradeInState{}, fmt.Errorf("output error: %w", err)
		}
		if st.done {
			if st.result != nil {
				return *st.result, nil
			}
			return domain.TradeInState{}, nil
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if signals != nil {
				signals.CheckRace()
			}
			r.discard(st.view.SessionID)
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("Input closed, valuation discarded", "session_id", st.view.SessionID)
				return domain.TradeInState{}, nil
			}
			if ctx.Err() != nil {
				return domain.TradeInState{}, ctx.Err()
			}
			return domain.TradeInState{}, fmt.Errorf("input error: %w", err)
		}

		r.Logger.Debug("Command", "session_id", st.view.SessionID, "phase", st.view.Phase, "input", line)
		if err := r.apply(ctx, st, line); err != nil {
			if isUserError(err) {
				if err := handler.SystemOutput(ctx, err.Error()); err != nil {
					return domain.TradeInState{}, err
				}
				continue
			}
			r.discard(st.view.SessionID)
			return domain.TradeInState{}, err
		}
	}
}

// apply interprets one command for the current phase.
func (r *Runner) apply(ctx context.Context, st *loop, line string) error {
	id := st.view.SessionID
	cmd := strings.ToLower(line)

	if cmd == "q" || cmd == "quit" {
		if err := r.Wizard.Cancel(ctx, id); err != nil {
			return err
		}
		st.done = true
		return nil
	}

	var (
		view domain.View
		err  error
	)
	switch st.view.Phase {
	case domain.PhaseSelectConsole:
		if p := domain.ParsePlatform(cmd); p != domain.PlatformUnknown {
			view, err = r.Wizard.ChoosePlatform(ctx, id, p)
			if err == nil {
				st.consoles = r.Wizard.Consoles(ctx, p, r.ConsoleLimit)
			}
			break
		}
		if isContinue(cmd) {
			view, err = r.Wizard.Advance(ctx, id)
			break
		}
		n, ok := choice(cmd, len(st.consoles))
		if !ok {
			return unknownCommand(line)
		}
		view, err = r.Wizard.SelectConsole(ctx, id, st.consoles[n].ID)

	case domain.PhaseQuestion:
		if isContinue(cmd) {
			view, err = r.Wizard.Advance(ctx, id)
			break
		}
		q := st.view.Question
		if q == nil {
			return unknownCommand(line)
		}
		value := line
		if n, ok := choice(cmd, len(q.Options)); ok {
			value = q.Options[n].Value
		}
		view, err = r.Wizard.Answer(ctx, id, q.ID, value)

	case domain.PhaseSummary:
		switch cmd {
		case "a", "add":
			state, err := r.Wizard.Commit(ctx, id)
			if err != nil {
				return err
			}
			st.result = &state
			st.done = true
			return nil
		case "s", "skip":
			if err := r.Wizard.Cancel(ctx, id); err != nil {
				return err
			}
			st.done = true
			return nil
		}
		return unknownCommand(line)

	default:
		st.done = true
		return nil
	}

	if err != nil {
		return err
	}
	st.view = view
	return nil
}

func (r *Runner) screen(st *loop) Screen {
	s := Screen{
		View:     st.view,
		Currency: r.Currency,
		Result:   st.result,
		Done:     st.done,
	}
	if st.view.Phase == domain.PhaseSelectConsole {
		s.Consoles = st.consoles
	}
	if st.view.Offer != nil && st.result == nil {
		s.Summary = summary.Markdown(st.view.Console, *st.view.Offer, r.Currency)
	}
	return s
}

// discard drops the wizard after the loop ends abnormally. The caller's
// context may already be cancelled.
func (r *Runner) discard(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Wizard.Cancel(ctx, sessionID); err != nil {
		r.Logger.Warn("Failed to discard wizard", "session_id", sessionID, "err", err)
	}
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	return NewTextHandler(os.Stdin, os.Stdout)
}

func isContinue(cmd string) bool {
	return cmd == "" || cmd == "c" || cmd == "continua"
}

// choice parses a 1-based menu number into an index.
func choice(cmd string, n int) (int, bool) {
	i, err := strconv.Atoi(cmd)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

type commandError struct {
	input string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("comando non riconosciuto: %q", e.input)
}

func unknownCommand(input string) error {
	return &commandError{input: input}
}

// isUserError reports errors the shopper can recover from by typing again.
func isUserError(err error) bool {
	var ce *commandError
	return errors.As(err, &ce) ||
		errors.Is(err, domain.ErrInvalidAnswer) ||
		errors.Is(err, domain.ErrNotFound)
}
