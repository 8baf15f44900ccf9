// Package schema maps declared fields to validation rules.
//
// A Rule is a closed set of predicates selected once per field by Select and
// evaluated with Check on every write to that field:
//
//	rule := schema.Select("contactEmail", schema.FieldTypeText) // RuleEmail
//	ok := rule.Check("test@example.com")                       // true
//
// Selection and checking are pure and hold no state, so both are safe for
// concurrent use.
package schema

import (
	"regexp"
	"strings"
)

// Age bounds accepted by RuleAge, inclusive.
const (
	MinAge = 0
	MaxAge = 150
)

// Rule identifies the validation applied to a field.
type Rule int

const (
	RuleNone Rule = iota
	RuleEmail
	RulePhone
	RuleAge
)

var (
	// emailPattern is local-part@domain.tld. \w is widened to Unicode letters
	// and digits so internationalized addresses pass as they would in a
	// Unicode-aware regex engine.
	emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+@[\p{L}\p{N}_.\-]+\.[\p{L}\p{N}_]+$`)

	// phonePattern is an optional "+", a digit, at least eight digits, hyphens
	// or whitespace, and a closing digit.
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\-\s]{8,}[0-9]$`)
)

// Check reports whether v is acceptable under the rule.
func (r Rule) Check(v any) bool {
	switch r {
	case RuleEmail:
		s, ok := v.(string)
		return ok && emailPattern.MatchString(s)
	case RulePhone:
		s, ok := v.(string)
		return ok && phonePattern.MatchString(s)
	case RuleAge:
		n, ok := AsInteger(v)
		return ok && n >= MinAge && n <= MaxAge
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	switch r {
	case RuleEmail:
		return "email"
	case RulePhone:
		return "phone"
	case RuleAge:
		return "age"
	default:
		return "none"
	}
}

// ParseRule is the inverse of Rule.String. Unknown names map to RuleNone.
func ParseRule(s string) Rule {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return RuleEmail
	case "phone":
		return RulePhone
	case "age":
		return RuleAge
	default:
		return RuleNone
	}
}

// Description explains what the rule requires, for error reasons.
func (r Rule) Description() string {
	switch r {
	case RuleEmail:
		return "must be an e-mail address"
	case RulePhone:
		return "must be a phone number"
	case RuleAge:
		return "must be an integer between 0 and 150"
	default:
		return ""
	}
}

// AsInteger widens any Go integer kind to int64, as the age rule sees it.
// Unsigned values above MaxAge are reported as MaxAge+1 rather than wrapped.
// Booleans, floats and numeric strings are not integers.
func AsInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return clampUint(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return clampUint(n), true
	default:
		return 0, false
	}
}

func clampUint(n uint64) int64 {
	if n > MaxAge {
		return MaxAge + 1
	}
	return int64(n)
}
