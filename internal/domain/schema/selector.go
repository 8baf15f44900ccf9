package schema

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name fragments that select a text rule. Stored case-folded.
const (
	emailFragment = "email"
	phoneFragment = "phone"
)

// Select returns the rule enforced on writes to a field with the given name
// and declared type. Checks run in a fixed order, so a text field whose name
// contains both "email" and "phone" resolves to RuleEmail:
//
//  1. Text whose name contains "email" (any case) -> RuleEmail
//  2. Text whose name contains "phone" (any case) -> RulePhone
//  3. Integer                                     -> RuleAge
//  4. anything else                               -> RuleNone
//
// Select is total: undefined field types fall through to RuleNone.
func Select(name string, t FieldType) Rule {
	switch t {
	case FieldTypeText:
		folded := cases.Fold().String(name)
		if strings.Contains(folded, emailFragment) {
			return RuleEmail
		}
		if strings.Contains(folded, phoneFragment) {
			return RulePhone
		}
		return RuleNone
	case FieldTypeInteger:
		return RuleAge
	default:
		return RuleNone
	}
}

// SelectFor is Select applied to a FieldSpec.
func SelectFor(f FieldSpec) Rule {
	return Select(f.Name, f.Type)
}
