package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
)

// ConstructRequest represents the JSON body for constructing one entity.
type ConstructRequest struct {
	Values map[string]any `json:"values"`
}

// Validate checks that a values object is present.
// Returns a *domain.ValidationError if the check fails.
func (r *ConstructRequest) Validate() error {
	if r.Values == nil {
		return &domain.ValidationError{Field: "values", Reason: domain.MsgRequired}
	}
	return nil
}

// FieldValues returns the values with JSON numbers normalized.
func (r *ConstructRequest) FieldValues() map[string]any {
	return normalizeObject(r.Values)
}

// BatchRequest represents the JSON body for constructing several entities of
// one type.
type BatchRequest struct {
	Records []map[string]any `json:"records"`
}

// Validate checks that at least one record is present and that every record
// is an object.
func (r *BatchRequest) Validate() error {
	if len(r.Records) == 0 {
		return &domain.ValidationError{Field: "records", Reason: domain.MsgRequired}
	}
	for i, rec := range r.Records {
		if rec == nil {
			return &domain.ValidationError{Field: fmt.Sprintf("records[%d]", i), Reason: "must be an object"}
		}
	}
	return nil
}

// FieldValues returns each record with JSON numbers normalized.
func (r *BatchRequest) FieldValues() []map[string]any {
	out := make([]map[string]any, len(r.Records))
	for i, rec := range r.Records {
		out[i] = normalizeObject(rec)
	}
	return out
}

// CheckFieldRequest represents the JSON body for a single-field check. The
// value is kept raw so that an absent value can be told apart from null.
type CheckFieldRequest struct {
	Value json.RawMessage `json:"value"`
}

// Validate checks that a value is present.
func (r *CheckFieldRequest) Validate() error {
	if len(r.Value) == 0 {
		return &domain.ValidationError{Field: "value", Reason: domain.MsgRequired}
	}
	return nil
}

// FieldValue decodes the raw value with JSON numbers normalized.
func (r *CheckFieldRequest) FieldValue() (any, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Value))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &domain.ValidationError{Field: "value", Reason: domain.MsgInvalidJSON}
	}
	return NormalizeValue(v), nil
}

// NormalizeValue converts json.Number values produced by a UseNumber decoder
// into int64 when integral and float64 otherwise, so integer rules see Go
// integers. Objects and arrays are normalized recursively; other values are
// returned unchanged.
func NormalizeValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		return normalizeObject(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = NormalizeValue(e)
		}
		return out
	default:
		return v
	}
}

func normalizeObject(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = NormalizeValue(v)
	}
	return out
}
