// Package cart manages the shopper's cart, persisted as a single JSON blob.
package cart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
)

// Cart is the decoded list of cart lines.
type Cart struct {
	Lines []domain.CartLine `json:"lines"`
}

// Decode parses the persisted blob. An empty blob is an empty cart.
func Decode(raw string) (Cart, error) {
	var c Cart
	if strings.TrimSpace(raw) == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(raw), &c.Lines); err != nil {
		return Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	return c, nil
}

// Encode serializes the cart into its persisted blob form (a JSON array).
func (c Cart) Encode() (string, error) {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(data), nil
}

// Add appends a line, or bumps the quantity of a line with the same configuration.
func (c *Cart) Add(line domain.CartLine) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].SameConfiguration(line) {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Increase adds one unit to every line of the product.
func (c *Cart) Increase(productID string) error {
	return c.each(productID, func(l *domain.CartLine) {
		l.Quantity++
	})
}

// Decrease removes one unit from every line of the product, never going below 1.
func (c *Cart) Decrease(productID string) error {
	return c.each(productID, func(l *domain.CartLine) {
		if l.Quantity > 1 {
			l.Quantity--
		}
	})
}

// Remove drops every line of the product.
func (c *Cart) Remove(productID string) error {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(c.Lines) {
		return domain.ErrLineNotFound
	}
	c.Lines = kept
	return nil
}

// DetachTradeIn removes the trade-in association from every line.
// It reports whether anything changed.
func (c *Cart) DetachTradeIn() bool {
	changed := false
	for i := range c.Lines {
		if c.Lines[i].TradeIn != nil {
			c.Lines[i].TradeIn = nil
			changed = true
		}
	}
	return changed
}

// Quantity returns the total units of a product in the cart.
func (c Cart) Quantity(productID string) int {
	n := 0
	for _, l := range c.Lines {
		if l.ProductID == productID {
			n += l.Quantity
		}
	}
	return n
}

func (c *Cart) each(productID string, fn func(*domain.CartLine)) error {
	found := false
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			fn(&c.Lines[i])
			found = true
		}
	}
	if !found {
		return domain.ErrLineNotFound
	}
	return nil
}

// Totals is the priced cart.
type Totals struct {
	Items    int           `json:"items"`
	Subtotal domain.Amount `json:"subtotal"`
	Shipping domain.Amount `json:"shipping"`
	Total    domain.Amount `json:"total"`
}

// Totals prices the cart: subtotal = Σ quantity × unit price, total = subtotal + shipping.
// Lines without a known price are counted but contribute nothing.
func (c Cart) Totals(prices map[string]domain.Amount, shipping domain.Amount) Totals {
	t := Totals{Shipping: shipping}
	for _, l := range c.Lines {
		t.Items += l.Quantity
		t.Subtotal += prices[l.ProductID] * domain.Amount(l.Quantity)
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}
