package runner

import (
	"log/slog"
)

// DefaultConsoleLimit is how many consoles step 0 lists.
const DefaultConsoleLimit = 10

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithShopper sets the shopper the valuation is published for.
func WithShopper(shopper string) Option {
	return func(r *Runner) {
		r.Shopper = shopper
	}
}

// WithCurrency sets the currency symbol used in the summary.
func WithCurrency(symbol string) Option {
	return func(r *Runner) {
		r.Currency = symbol
	}
}

// WithConsoleLimit caps the console list at step 0.
func WithConsoleLimit(n int) Option {
	return func(r *Runner) {
		r.ConsoleLimit = n
	}
}

// WithSignals toggles interruption by SIGINT/SIGTERM (default: on).
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.signals = enabled
	}
}
