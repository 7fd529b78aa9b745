package validation

import "github.com/shopspring/decimal"

// Record holds the validated, coerced values of a payload keyed by field name.
// Values are string (String, Email), decimal.Decimal (Number), int64 (Integer)
// or bool (Bool).
type Record map[string]any

func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r Record) Decimal(name string) decimal.Decimal {
	d, _ := r[name].(decimal.Decimal)
	return d
}

func (r Record) Int64(name string) int64 {
	i, _ := r[name].(int64)
	return i
}

func (r Record) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}
