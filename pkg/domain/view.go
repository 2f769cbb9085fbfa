package domain

// Continue button labels.
const (
	ContinueLabel  = "CONTINUA"
	SeeValueLabel  = "VEDI VALORE"
	AddTradeInText = "ADD TRADE-IN"
	SkipTradeIn    = "SKIP TRADE-IN"
)

// View is what the host should render for the current session state.
// It is computed from a Session and never persisted.
type View struct {
	SessionID string   `json:"session_id"`
	Shopper   string   `json:"shopper"`
	Phase     Phase    `json:"phase"`
	Platform  Platform `json:"platform"`
	Theme     Theme    `json:"theme"`
	Console   *Console `json:"console,omitempty"`

	Step          int `json:"step"`
	FinalStep     int `json:"final_step"`
	QuestionIndex int `json:"question_index"`
	QuestionCount int `json:"question_count"`

	Question *Question `json:"question,omitempty"`
	Selected string    `json:"selected,omitempty"`

	CatalogPending bool   `json:"catalog_pending,omitempty"`
	CanContinue    bool   `json:"can_continue"`
	ContinueLabel  string `json:"continue_label,omitempty"`

	Offer *Offer `json:"offer,omitempty"`
}
