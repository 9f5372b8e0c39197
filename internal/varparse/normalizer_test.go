package varparse

import (
	"testing"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func TestParseInputEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if got := ParseInput(input); len(got) != 0 {
			t.Errorf("ParseInput(%q) = %#v, want empty list", input, got)
		}
	}
}

func TestParseInputAssignmentList(t *testing.T) {
	got := ParseInput("nums = [1,2,3], target = 9")
	assertVars(t, got, []domain.Variable{
		{Name: "nums", Value: "[1,2,3]", Type: domain.VarTypeListInt},
		{Name: "target", Value: "9", Type: domain.VarTypeInt},
	})
}

func TestParseInputJSONObjectPreservesKeyOrder(t *testing.T) {
	got := ParseInput(`{"zebra": 5, "alpha": "hi", "mid": [1.5, 2.5]}`)
	assertVars(t, got, []domain.Variable{
		{Name: "zebra", Value: "5", Type: domain.VarTypeInt},
		{Name: "alpha", Value: `"hi"`, Type: domain.VarTypeString},
		{Name: "mid", Value: "[1.5,2.5]", Type: domain.VarTypeListFloat},
	})
}

func TestParseInputRepairsNestedFlattenedString(t *testing.T) {
	got := ParseInput(`{"nums": "[1,2,3], target=6"}`)
	assertVars(t, got, []domain.Variable{
		{Name: "nums", Value: "[1,2,3]", Type: domain.VarTypeListInt},
		{Name: "target", Value: "6", Type: domain.VarTypeInt},
	})
}

// The repair threshold is "more than one recovered variable", not "at least
// as many variables as commas": commas inside brackets would over-count.
func TestParseInputRepairThresholdIgnoresBracketedCommas(t *testing.T) {
	got := ParseInput(`{"k": "[1,2], k2=3"}`)
	assertVars(t, got, []domain.Variable{
		{Name: "k", Value: "[1,2]", Type: domain.VarTypeListInt},
		{Name: "k2", Value: "3", Type: domain.VarTypeInt},
	})
}

func TestParseInputKeepsEqualsStringWhenRescanRecoversOne(t *testing.T) {
	got := ParseInput(`{"note": "a=b"}`)
	assertVars(t, got, []domain.Variable{
		{Name: "note", Value: `"a=b"`, Type: domain.VarTypeString},
	})
}

func TestParseInputBareScalarFallback(t *testing.T) {
	got := ParseInput("True")
	assertVars(t, got, []domain.Variable{
		{Name: "input", Value: "true", Type: domain.VarTypeString},
	})
}

func TestParseInputOpaqueTextFallback(t *testing.T) {
	got := ParseInput("  just some words  ")
	assertVars(t, got, []domain.Variable{
		{Name: "input", Value: "just some words", Type: domain.VarTypeString},
	})
}

// A top-level JSON array is not an object, so it goes through the scanner
// (which finds nothing) and lands in the terminal fallback.
func TestParseInputTopLevelArrayFallsBack(t *testing.T) {
	got := ParseInput("[1,2,3]")
	assertVars(t, got, []domain.Variable{
		{Name: "input", Value: "[1,2,3]", Type: domain.VarTypeString},
	})
}

func TestParseInputObjectWithTrailingGarbageFallsBack(t *testing.T) {
	got := ParseInput(`{"a": 1} trailing`)
	if len(got) != 1 || got[0].Name != "input" {
		t.Fatalf("expected single fallback variable, got %#v", got)
	}
}
