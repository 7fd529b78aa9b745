package models

import "github.com/shopspring/decimal"

// Amount is a monetary value stored as NUMERIC. It renders as a bare JSON
// number (1000.5) rather than the quoted string decimal.Decimal emits.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON implements json.Marshaler interface
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
