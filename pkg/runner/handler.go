package runner

import (
	"context"

	"github.com/aretw0/tradein/pkg/domain"
)

// Screen is everything a handler needs to present one wizard state.
type Screen struct {
	View     domain.View          `json:"view"`
	Consoles []domain.Console     `json:"consoles,omitempty"`
	Summary  string               `json:"summary,omitempty"`
	Currency string               `json:"currency,omitempty"`
	Result   *domain.TradeInState `json:"result,omitempty"`
	Done     bool                 `json:"done,omitempty"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents a screen to the user.
	Output(ctx context.Context, screen Screen) error

	// Input reads a response from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (errors, status updates).
	SystemOutput(ctx context.Context, msg string) error
}

// Wizard is the trade-in API the runner drives.
type Wizard interface {
	Open(ctx context.Context, shopper string) (domain.View, error)
	Consoles(ctx context.Context, platform domain.Platform, limit int) []domain.Console
	ChoosePlatform(ctx context.Context, sessionID string, p domain.Platform) (domain.View, error)
	SelectConsole(ctx context.Context, sessionID, consoleID string) (domain.View, error)
	Answer(ctx context.Context, sessionID, questionID, value string) (domain.View, error)
	Advance(ctx context.Context, sessionID string) (domain.View, error)
	Cancel(ctx context.Context, sessionID string) error
	Commit(ctx context.Context, sessionID string) (domain.TradeInState, error)
}
