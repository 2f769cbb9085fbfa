package domain

import "time"

// StepSelectConsole is the step index of the console selection screen.
const StepSelectConsole = 0

// Phase is the coarse state of the wizard state machine.
type Phase string

const (
	PhaseSelectConsole Phase = "select_console" // Step 0
	PhaseQuestion      Phase = "question"       // Steps 1..N
	PhaseSummary       Phase = "summary"        // FINAL = N+1
	PhaseClosed        Phase = "closed"         // Cancelled or committed
)

// Catalog origins recorded on the session.
const (
	CatalogSourceDefault = "default"
	CatalogSourceConsole = "console"
)

// Session is the runtime snapshot of one wizard instance.
type Session struct {
	ID      string `json:"id"`
	Shopper string `json:"shopper"`

	// Platform filters the console list on the selection screen.
	Platform Platform `json:"platform"`

	// Console is the selected console; nil until one is chosen at step 0.
	Console *Console `json:"console,omitempty"`

	// Step is 0 (console selection), 1..N (questions) or N+1 (summary).
	Step int `json:"step"`

	// QuestionIndex is the zero-based position within the current step.
	QuestionIndex int `json:"question_index"`

	Answers AnswerSet `json:"answers"`

	// Catalog is the question set resolved for the selected console.
	Catalog       Catalog `json:"catalog,omitempty"`
	CatalogSource string  `json:"catalog_source,omitempty"`

	// CatalogPending is true while the catalog for the selected console is being fetched.
	CatalogPending bool `json:"catalog_pending,omitempty"`

	// CatalogGeneration increases on every selection change; a fetch result
	// is only applied when it carries the current generation.
	CatalogGeneration uint64 `json:"catalog_generation"`

	Closed bool `json:"closed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a clean session on the console selection screen.
func NewSession(id, shopper string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Shopper:   shopper,
		Platform:  PlatformPlaystation,
		Step:      StepSelectConsole,
		Answers:   make(AnswerSet),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FinalStep returns FINAL = N+1 for the session's catalog.
func (s *Session) FinalStep() int {
	return s.Catalog.Steps() + 1
}

// Phase derives the state machine phase from the step counters.
func (s *Session) Phase() Phase {
	switch {
	case s.Closed:
		return PhaseClosed
	case s.Step == StepSelectConsole:
		return PhaseSelectConsole
	case s.Step >= s.FinalStep():
		return PhaseSummary
	default:
		return PhaseQuestion
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	cp := *s
	if s.Console != nil {
		c := *s.Console
		cp.Console = &c
	}
	cp.Answers = s.Answers.Clone()
	cp.Catalog = s.Catalog.Clone()
	return &cp
}
