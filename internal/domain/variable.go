package domain

// VarType is the semantic type tag assigned to a parsed test-case variable.
// Tags are advisory: they drive editor styling and default values, and never
// block parsing or serialization.
type VarType string

const (
	VarTypeInt         VarType = "int"
	VarTypeFloat       VarType = "float"
	VarTypeString      VarType = "string"
	VarTypeBool        VarType = "bool"
	VarTypeListInt     VarType = "list[int]"
	VarTypeListStr     VarType = "list[str]"
	VarTypeListFloat   VarType = "list[float]"
	VarTypeListListInt VarType = "list[list[int]]"
	VarTypeList        VarType = "list"
	VarTypeObject      VarType = "object"
)

// DefaultValue returns the canonical JSON text a fresh variable of this type
// starts with when the user adds a custom test case.
func (t VarType) DefaultValue() string {
	switch t {
	case VarTypeInt:
		return "0"
	case VarTypeFloat:
		return "0.0"
	case VarTypeBool:
		return "false"
	case VarTypeObject:
		return "{}"
	case VarTypeList, VarTypeListInt, VarTypeListStr, VarTypeListFloat, VarTypeListListInt:
		return "[]"
	}
	return `""`
}

// Variable is a single named, typed test-case input field.
// Value holds the canonical JSON encoding of the field, except for values
// that never decoded as a literal, which are kept as the raw text the user
// authored so no content is ever dropped.
type Variable struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Type  VarType `json:"type"`
}
