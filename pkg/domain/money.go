package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Amount is a monetary value expressed in cents of the store currency.
// Arithmetic on Amount is exact; rounding only happens when formatting.
type Amount int64

// Units converts whole currency units into an Amount.
func Units(n int) Amount {
	return Amount(n) * 100
}

// FromFloat converts a decimal price (as returned by the backend) into an Amount.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float returns the amount in currency units.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// String formats the amount with two decimals, e.g. "420.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a decimal number in currency units.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a decimal number in currency units.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(data), err)
	}
	*a = FromFloat(f)
	return nil
}

// MaxAmount returns the larger of two amounts.
func MaxAmount(a, b Amount) Amount {
	if a > b {
		return a
	}
	return b
}
