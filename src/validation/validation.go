// Package validation checks untyped request payloads against a declarative
// per-field schema. Validate returns either a typed Record holding only the
// declared fields or the complete list of field violations.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	String Kind = iota
	Email
	Number
	Integer
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Email:
		return "email"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Coercion converts a raw value before the kind check runs. Returning false
// marks the value as absent.
type Coercion func(value any) (any, bool)

type Field struct {
	Name string
	Kind Kind
	// Optional fields may be absent. Present values are still checked.
	Optional bool
	// MinLength applies to String and Email kinds; required strings default to 1.
	MinLength int
	// RequiredMessage is reported when the value is absent, null, too short or
	// coerced away.
	RequiredMessage string
	// InvalidMessage is reported when the value has the wrong type or format.
	// RequiredMessage is used when it is empty.
	InvalidMessage string
	Coerce         Coercion
}

type Schema []Field

// Violation locates a problem by a path of keys into the payload, e.g.
// ["value"]. Problems with the payload as a whole have an empty path.
type Violation struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// At builds a violation for the given path. A nil path becomes [] so it still
// renders as a JSON array.
func At(message string, path ...string) Violation {
	if path == nil {
		path = []string{}
	}
	return Violation{Path: path, Message: message}
}

func (v Violation) Field() string {
	return strings.Join(v.Path, ".")
}

// Violations is the error returned by Validate. It is never empty.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field() + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields lists the offending field names in report order, nested paths
// joined with ".".
func (v Violations) Fields() []string {
	fields := make([]string, len(v))
	for i, violation := range v {
		fields[i] = violation.Field()
	}
	return fields
}

var validate = validator.New()

// Validate evaluates every field of schema against raw. It never stops at the
// first failure: the returned Violations cover the whole payload, in schema order.
func Validate(schema Schema, raw map[string]any) (Record, error) {
	record := make(Record, len(schema))
	var violations Violations

	for _, field := range schema {
		value, present := raw[field.Name]
		if present && value == nil {
			present = false
		}
		if present && field.Coerce != nil {
			value, present = field.Coerce(value)
		}
		if !present {
			if !field.Optional {
				violations = append(violations, field.required())
			}
			continue
		}

		typed, violation := field.check(value)
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}
		record[field.Name] = typed
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return record, nil
}

func (f Field) required() Violation {
	return At(f.RequiredMessage, f.Name)
}

func (f Field) invalid() *Violation {
	message := f.InvalidMessage
	if message == "" {
		message = f.RequiredMessage
	}
	violation := At(message, f.Name)
	return &violation
}

func (f Field) check(value any) (any, *Violation) {
	switch f.Kind {
	case String, Email:
		s, ok := value.(string)
		if !ok {
			return nil, f.invalid()
		}
		minLength := f.MinLength
		if minLength == 0 && !f.Optional {
			minLength = 1
		}
		if utf8.RuneCountInString(s) < minLength {
			violation := f.required()
			return nil, &violation
		}
		if f.Kind == Email && validate.Var(s, "email") != nil {
			return nil, f.invalid()
		}
		return s, nil

	case Number:
		d, ok := toDecimal(value)
		if !ok {
			return nil, f.invalid()
		}
		return d, nil

	case Integer:
		d, ok := toDecimal(value)
		if !ok || !d.IsInteger() {
			return nil, f.invalid()
		}
		if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
			return nil, f.invalid()
		}
		return d.IntPart(), nil

	case Bool:
		b, ok := value.(bool)
		if !ok {
			return nil, f.invalid()
		}
		return b, nil
	}
	return nil, f.invalid()
}

// Numbers outside these bounds are invalid. They are checked on exponent and
// coefficient alone, before any comparison rescales the value.
const (
	maxIntegerDigits = 30
	maxScale         = 30
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxScale {
		return false
	}
	if d.IsZero() {
		return true
	}
	return int64(d.NumDigits())+exp <= maxIntegerDigits
}

func toDecimal(value any) (decimal.Decimal, bool) {
	d, ok := anyToDecimal(value)
	if !ok || !inRange(d) {
		return decimal.Decimal{}, false
	}
	return d, true
}

func anyToDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return anyToDecimal(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	}
	return decimal.Decimal{}, false
}

// NumericText lets a numeric field accept numeric-looking text. Text that
// does not parse as a number is reported as absent, so it yields the field's
// required message rather than a format error. Empty or blank text is absent
// too; it does not read as 0.
func NumericText(value any) (any, bool) {
	s, ok := value.(string)
	if !ok {
		return value, true
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	return d, true
}
