package varparse

import (
	"testing"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func TestFormatVariables(t *testing.T) {
	vars := []domain.Variable{
		{Name: "nums", Value: "[1,2,3]", Type: domain.VarTypeListInt},
		{Name: "target", Value: "9", Type: domain.VarTypeInt},
	}
	want := "nums = [1,2,3]\ntarget = 9"
	if got := FormatVariables(vars); got != want {
		t.Errorf("FormatVariables = %q, want %q", got, want)
	}
	if got := FormatVariables(nil); got != "" {
		t.Errorf("FormatVariables(nil) = %q, want empty", got)
	}
}

func TestUnescapeOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(none)"},
		{`line1\nline2`, "line1\nline2"},
		{`a\tb`, "a\tb"},
		{`plain`, "plain"},
		{`\n\t`, "\n\t"},
	}
	for _, tt := range tests {
		if got := UnescapeOutput(tt.in); got != tt.want {
			t.Errorf("UnescapeOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
