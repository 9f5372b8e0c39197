package varparse

import (
	"encoding/json"
	"testing"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func decodeJSON(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("test literal %q did not decode: %v", s, err)
	}
	return v
}

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		literal string
		want    domain.VarType
	}{
		{`5`, domain.VarTypeInt},
		{`-12`, domain.VarTypeInt},
		{`3.0`, domain.VarTypeInt},
		{`3.14`, domain.VarTypeFloat},
		{`"hello"`, domain.VarTypeString},
		{`null`, domain.VarTypeString},
		{`true`, domain.VarTypeBool},
		{`false`, domain.VarTypeBool},
		{`[]`, domain.VarTypeList},
		{`[1,2,3]`, domain.VarTypeListInt},
		{`[1,2.5,3]`, domain.VarTypeListFloat},
		{`["a","b"]`, domain.VarTypeListStr},
		{`[[1,2],[3,4]]`, domain.VarTypeListListInt},
		{`[[]]`, domain.VarTypeListListInt},
		{`[["a"],["b"]]`, domain.VarTypeList},
		{`[[[1]]]`, domain.VarTypeList},
		{`[1,"two",true]`, domain.VarTypeList},
		{`[true,false]`, domain.VarTypeList},
		{`{}`, domain.VarTypeObject},
		{`{"a":1}`, domain.VarTypeObject},
	}

	for _, tt := range tests {
		got := ClassifyValue(decodeJSON(t, tt.literal))
		if got != tt.want {
			t.Errorf("ClassifyValue(%s) = %q, want %q", tt.literal, got, tt.want)
		}
	}
}

func TestClassifyValueNilAndUnknown(t *testing.T) {
	if got := ClassifyValue(nil); got != domain.VarTypeString {
		t.Errorf("ClassifyValue(nil) = %q, want %q", got, domain.VarTypeString)
	}
	if got := ClassifyValue(struct{}{}); got != domain.VarTypeString {
		t.Errorf("ClassifyValue(struct{}{}) = %q, want %q", got, domain.VarTypeString)
	}
}
