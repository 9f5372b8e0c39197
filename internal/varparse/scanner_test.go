package varparse

import (
	"testing"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func assertVars(t *testing.T, got, want []domain.Variable) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d variables, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variable %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestScanAssignmentsBasic(t *testing.T) {
	got := ScanAssignments("nums = [1,2,3], target = 9")
	assertVars(t, got, []domain.Variable{
		{Name: "nums", Value: "[1,2,3]", Type: domain.VarTypeListInt},
		{Name: "target", Value: "9", Type: domain.VarTypeInt},
	})
}

func TestScanAssignmentsNestedArrays(t *testing.T) {
	got := ScanAssignments("matrix = [[1,2],[3,4]], k = 2")
	assertVars(t, got, []domain.Variable{
		{Name: "matrix", Value: "[[1,2],[3,4]]", Type: domain.VarTypeListListInt},
		{Name: "k", Value: "2", Type: domain.VarTypeInt},
	})
}

func TestScanAssignmentsQuoteStyles(t *testing.T) {
	got := ScanAssignments(`s = 'hello', t = "it's fine"`)
	assertVars(t, got, []domain.Variable{
		{Name: "s", Value: `"hello"`, Type: domain.VarTypeString},
		{Name: "t", Value: `"it's fine"`, Type: domain.VarTypeString},
	})
}

func TestScanAssignmentsPythonSpellings(t *testing.T) {
	got := ScanAssignments("a = True, b = FALSE, c = None, d = NULL")
	assertVars(t, got, []domain.Variable{
		{Name: "a", Value: "true", Type: domain.VarTypeBool},
		{Name: "b", Value: "false", Type: domain.VarTypeBool},
		{Name: "c", Value: "null", Type: domain.VarTypeString},
		{Name: "d", Value: "null", Type: domain.VarTypeString},
	})
}

func TestScanAssignmentsPythonLiteralsInsideArrays(t *testing.T) {
	got := ScanAssignments("vals = [True, None, 'two']")
	assertVars(t, got, []domain.Variable{
		{Name: "vals", Value: `[true,null,"two"]`, Type: domain.VarTypeList},
	})
}

func TestScanAssignmentsBracketsInsideQuotes(t *testing.T) {
	got := ScanAssignments(`words = ['a,b', 'c]d'], n = 1`)
	assertVars(t, got, []domain.Variable{
		{Name: "words", Value: `["a,b","c]d"]`, Type: domain.VarTypeListStr},
		{Name: "n", Value: "1", Type: domain.VarTypeInt},
	})
}

func TestScanAssignmentsObjectValue(t *testing.T) {
	got := ScanAssignments(`config = {"depth": 3}, flag = false`)
	assertVars(t, got, []domain.Variable{
		{Name: "config", Value: `{"depth":3}`, Type: domain.VarTypeObject},
		{Name: "flag", Value: "false", Type: domain.VarTypeBool},
	})
}

func TestScanAssignmentsFloats(t *testing.T) {
	got := ScanAssignments("rate = 2.5, offsets = [0.5, 1.5]")
	assertVars(t, got, []domain.Variable{
		{Name: "rate", Value: "2.5", Type: domain.VarTypeFloat},
		{Name: "offsets", Value: "[0.5,1.5]", Type: domain.VarTypeListFloat},
	})
}

func TestScanAssignmentsUndecodableValueBecomesString(t *testing.T) {
	got := ScanAssignments("weird = @#$%")
	assertVars(t, got, []domain.Variable{
		{Name: "weird", Value: "@#$%", Type: domain.VarTypeString},
	})
}

func TestScanAssignmentsNoMatches(t *testing.T) {
	for _, input := range []string{"", "no assignments here", "[1,2,3]", "a == b"} {
		if got := ScanAssignments(input); len(got) != 0 {
			t.Errorf("ScanAssignments(%q) = %#v, want empty", input, got)
		}
	}
}

func TestScanAssignmentsEveryPairAppearsOnceInOrder(t *testing.T) {
	got := ScanAssignments("a = 1, b = [2, 3], c = 'x', d = 4.5")
	names := make([]string, len(got))
	for i, v := range got {
		names[i] = v.Name
	}
	want := []string{"a", "b", "c", "d"}
	if len(names) != len(want) {
		t.Fatalf("got names %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got names %v, want %v", names, want)
		}
	}
}
