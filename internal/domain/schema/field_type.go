package schema

import "strings"

// FieldType is the semantic category a field is declared to hold. It is known
// when the entity type is defined and never depends on a runtime value.
type FieldType int

const (
	FieldTypeOther FieldType = iota
	FieldTypeText
	FieldTypeInteger
)

// IsValid returns true if the field type is one of the defined constants.
// Undefined values are still accepted everywhere and select no rule.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeInteger, FieldTypeOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	switch t {
	case FieldTypeText:
		return "text"
	case FieldTypeInteger:
		return "integer"
	default:
		return "other"
	}
}

// ParseFieldType converts a declared type name to a FieldType. Matching is
// case-insensitive; unrecognized names degrade to FieldTypeOther.
func ParseFieldType(s string) FieldType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string", "str":
		return FieldTypeText
	case "integer", "int":
		return FieldTypeInteger
	default:
		return FieldTypeOther
	}
}

// FieldSpec declares one field of an entity type.
type FieldSpec struct {
	Name string
	Type FieldType
}

// Text declares a text field.
func Text(name string) FieldSpec { return FieldSpec{Name: name, Type: FieldTypeText} }

// Integer declares an integer field.
func Integer(name string) FieldSpec { return FieldSpec{Name: name, Type: FieldTypeInteger} }

// Other declares a field with no semantic category.
func Other(name string) FieldSpec { return FieldSpec{Name: name, Type: FieldTypeOther} }
