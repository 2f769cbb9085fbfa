package domain

import "time"

// Breakdown is the structured detail record of a valuation.
type Breakdown struct {
	Condition        string            `json:"condition"`
	TechnicalDefects string            `json:"technicalDefects"`
	Accessories      string            `json:"accessories"`
	Memory           string            `json:"memory,omitempty"`
	ControllerCount  int               `json:"controllerCount"`
	Box              string            `json:"box,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// Adjustment is one applied deduction, kept for display.
type Adjustment struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
	Amount     Amount `json:"amount"`
}

// Offer is the valuation derived at the summary step.
type Offer struct {
	BasePrice   Amount       `json:"base_price"`
	FinalPrice  Amount       `json:"final_price"`
	Floored     bool         `json:"floored"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
	Breakdown   Breakdown    `json:"breakdown"`
	Lines       []string     `json:"lines"`
}

// TradeInItem is the detail record published alongside the offer.
type TradeInItem struct {
	ConsoleID   string    `json:"consoleId,omitempty"`
	ProductName string    `json:"productName"`
	ImagePath   string    `json:"imagePath"`
	Details     Breakdown `json:"details"`
}

// TradeInState is the shared pricing state consumed by product and cart views.
// Active, FinalValue and Item always change together.
type TradeInState struct {
	Active     bool         `json:"isTradeInActive"`
	FinalValue Amount       `json:"tradeInFinalValue"`
	Item       *TradeInItem `json:"item,omitempty"`
	UpdatedAt  time.Time    `json:"updatedAt,omitempty"`
}
