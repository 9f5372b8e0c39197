// package varparse converts free-form test-case text into typed, named
// variables and back. It understands three dialects: a JSON object literal,
// a comma-separated "name = value" assignment list with Python-style
// literals, and a single bare scalar.
package varparse

import (
	"math"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// ClassifyValue assigns exactly one VarType tag to a JSON-decoded value.
// It is total: every input, including nil, classifies without error.
func ClassifyValue(v interface{}) domain.VarType {
	switch val := v.(type) {
	case []interface{}:
		return classifyArray(val)
	case float64:
		if val == math.Trunc(val) {
			return domain.VarTypeInt
		}
		return domain.VarTypeFloat
	case bool:
		return domain.VarTypeBool
	case map[string]interface{}:
		return domain.VarTypeObject
	}
	// strings, null, and anything unrecognized
	return domain.VarTypeString
}

func classifyArray(arr []interface{}) domain.VarType {
	if len(arr) == 0 {
		return domain.VarTypeList
	}

	// Only one level of nesting is classified; deeper or non-numeric
	// nesting degrades to the generic list tag.
	if nested, ok := arr[0].([]interface{}); ok {
		if len(nested) == 0 {
			return domain.VarTypeListListInt
		}
		if _, numeric := nested[0].(float64); numeric {
			return domain.VarTypeListListInt
		}
		return domain.VarTypeList
	}

	allNumbers := true
	allStrings := true
	anyFraction := false
	for _, el := range arr {
		if f, ok := el.(float64); ok {
			allStrings = false
			if f != math.Trunc(f) {
				anyFraction = true
			}
			continue
		}
		allNumbers = false
		if _, ok := el.(string); !ok {
			allStrings = false
		}
	}

	switch {
	case allNumbers && anyFraction:
		return domain.VarTypeListFloat
	case allNumbers:
		return domain.VarTypeListInt
	case allStrings:
		return domain.VarTypeListStr
	}
	return domain.VarTypeList
}
