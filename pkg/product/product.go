// Package product prices configured products on the product page, with or
// without an active trade-in.
package product

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/tradein/pkg/domain"
)

// ErrUnknownOption is returned when a selection names a variant the product does not offer.
var ErrUnknownOption = errors.New("unknown product option")

// MaxControllers is the highest number of extra controllers offered.
const MaxControllers = 2

// Condition is a selectable refurbishment grade.
type Condition struct {
	Value       string        `json:"value"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Surcharge   domain.Amount `json:"surcharge"`
}

var conditions = []Condition{
	{Value: "accettabile", Label: "NOT BAD", Description: "Dispositivo in condizioni accettabili.", Surcharge: 0},
	{Value: "eccellente", Label: "GOOD", Description: "Dispositivo in ottime condizioni.", Surcharge: domain.Units(30)},
	{Value: "new", Label: "BRAND NEW", Description: "Dispositivo pari al nuovo, nessun segno di usura.", Surcharge: domain.Units(70)},
}

// Conditions returns the refurbishment grades, cheapest first.
func Conditions() []Condition {
	return append([]Condition(nil), conditions...)
}

// ControllerOption is a number of extra controllers and its cost.
type ControllerOption struct {
	Count     int           `json:"count"`
	ExtraCost domain.Amount `json:"extra_cost"`
}

// ControllerOptions lists 0..MaxControllers controllers priced for the platform.
func ControllerOptions(p domain.Platform) []ControllerOption {
	unit := p.ControllerCost()
	out := make([]ControllerOption, 0, MaxControllers+1)
	for n := 0; n <= MaxControllers; n++ {
		out = append(out, ControllerOption{Count: n, ExtraCost: unit * domain.Amount(n)})
	}
	return out
}

// Selection is the configuration chosen on the product page.
// Empty fields select the base variant.
type Selection struct {
	Model       string `json:"model,omitempty"`
	Memory      string `json:"memory,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Controllers int    `json:"controllers"`
}

// Quote is the priced configuration.
type Quote struct {
	Base         domain.Amount `json:"base"`
	Model        domain.Amount `json:"model"`
	Memory       domain.Amount `json:"memory"`
	Condition    domain.Amount `json:"condition"`
	Controllers  domain.Amount `json:"controllers"`
	Configured   domain.Amount `json:"configured"`
	TradeIn      domain.Amount `json:"trade_in"`
	AfterTradeIn domain.Amount `json:"after_trade_in"`
}

// Price computes the configured price of a product and, when a trade-in is
// active, the price after deducting it.
func Price(p domain.Product, sel Selection, tradeIn domain.TradeInState) (Quote, error) {
	q := Quote{Base: p.OfferPrice}

	var err error
	if q.Model, err = variantPrice(p.Models, sel.Model, "model"); err != nil {
		return Quote{}, err
	}
	if q.Memory, err = variantPrice(p.Memories, sel.Memory, "memory"); err != nil {
		return Quote{}, err
	}
	if sel.Condition != "" {
		c, ok := conditionByValue(sel.Condition)
		if !ok {
			return Quote{}, fmt.Errorf("%w: condition %q", ErrUnknownOption, sel.Condition)
		}
		q.Condition = c.Surcharge
	}
	if sel.Controllers < 0 || sel.Controllers > MaxControllers {
		return Quote{}, fmt.Errorf("%w: %d controllers", ErrUnknownOption, sel.Controllers)
	}
	q.Controllers = p.Platform.ControllerCost() * domain.Amount(sel.Controllers)

	q.Configured = q.Base + q.Model + q.Memory + q.Condition + q.Controllers
	q.AfterTradeIn = q.Configured
	if tradeIn.Active {
		q.TradeIn = tradeIn.FinalValue
		q.AfterTradeIn = AfterTradeIn(q.Configured, tradeIn.FinalValue)
	}
	return q, nil
}

// AfterTradeIn returns max(0, price - tradeIn).
func AfterTradeIn(price, tradeIn domain.Amount) domain.Amount {
	return domain.MaxAmount(0, price-tradeIn)
}

// Line builds the cart line for a configuration.
func (s Selection) Line(productID string, tradeIn *domain.TradeInItem) domain.CartLine {
	return domain.CartLine{
		ProductID:  productID,
		Quantity:   1,
		TradeIn:    tradeIn,
		Model:      s.Model,
		Controller: strconv.Itoa(s.Controllers),
		Memory:     s.Memory,
		Condition:  s.Condition,
	}
}

func variantPrice(options []domain.PricedOption, name, kind string) (domain.Amount, error) {
	if name == "" {
		return 0, nil
	}
	for _, o := range options {
		if o.Name == name {
			return o.Price, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownOption, kind, name)
}

func conditionByValue(v string) (Condition, bool) {
	for _, c := range conditions {
		if c.Value == v {
			return c, true
		}
	}
	return Condition{}, false
}
