package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// ErrNotFound is returned by writes that target a row which does not exist.
// Reads report absence with a nil result instead.
var ErrNotFound = errors.New("entity not found")

// ConflictError is a unique constraint violation the domain knows how to explain.
type ConflictError struct {
	Field      string
	Message    string
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Field, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// StoreError wraps every other store failure. It carries no field attribution.
type StoreError struct {
	Op     string
	Entity string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// uniqueConstraint describes a conflict to callers. OpMessages overrides
// Message for specific operations.
type uniqueConstraint struct {
	Field      string
	Message    string
	OpMessages map[string]string
}

func (c uniqueConstraint) message(op string) string {
	if m, ok := c.OpMessages[op]; ok {
		return m
	}
	return c.Message
}

// uniqueConstraints maps store constraint names to the field and message
// reported to callers. Unique violations on unlisted constraints surface as
// StoreError.
var uniqueConstraints = map[string]uniqueConstraint{
	"clients_email_key": {
		Field:      "email",
		Message:    "Email já cadastrado",
		OpMessages: map[string]string{"Update": "Este e-mail já está cadastrado."},
	},
}

// TranslateError classifies a store error into ConflictError or StoreError.
func TranslateError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if c, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return &ConflictError{
				Field:      c.Field,
				Message:    c.message(op),
				Constraint: pgErr.ConstraintName,
				Err:        err,
			}
		}
	}
	return &StoreError{Op: op, Entity: entity, Err: err}
}
