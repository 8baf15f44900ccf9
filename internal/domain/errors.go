package domain

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Reason messages shared by validation producers.
const (
	MsgRequired    = "is required"
	MsgInvalidJSON = "invalid JSON"
)

// ValidationError reports a single rejected write: the field that was being
// assigned and the value that was refused. Use errors.Is(err, ErrValidation)
// for simple checks, or errors.As(err, &verr) to read Field and Value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == MsgRequired {
		return fmt.Sprintf("%s: %q %s", ErrValidation.Error(), e.Field, MsgRequired)
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s: invalid value for %q: %v", ErrValidation.Error(), e.Field, e.Value)
	}
	return fmt.Sprintf("%s: invalid value for %q: %v (%s)", ErrValidation.Error(), e.Field, e.Value, e.Reason)
}

// LogValue keeps the rejected value out of log records.
func (e *ValidationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("field", e.Field),
		slog.String("reason", e.Reason),
	)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
