package domain

// CartLine is one entry of the persisted cart blob.
type CartLine struct {
	ProductID  string       `json:"productId"`
	Quantity   int          `json:"quantity"`
	TradeIn    *TradeInItem `json:"tradeIn"`
	Model      string       `json:"model"`
	Controller string       `json:"controller"`
	Memory     string       `json:"memory"`
	Condition  string       `json:"condition"`
}

// SameConfiguration reports whether two lines describe the same product configuration.
func (l CartLine) SameConfiguration(o CartLine) bool {
	return l.ProductID == o.ProductID &&
		l.Model == o.Model &&
		l.Controller == o.Controller &&
		l.Memory == o.Memory &&
		l.Condition == o.Condition
}
