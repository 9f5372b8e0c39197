package workbench

import (
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func caseWith(vars ...domain.Variable) domain.TestCase {
	return domain.TestCase{ID: uuid.New(), Variables: vars, ExpectedOutput: "42"}
}

func TestMapResultsRowPerCase(t *testing.T) {
	cases := []domain.TestCase{
		caseWith(domain.Variable{Name: "n", Value: "1", Type: domain.VarTypeInt}),
		caseWith(domain.Variable{Name: "n", Value: "2", Type: domain.VarTypeInt}),
		caseWith(domain.Variable{Name: "n", Value: "3", Type: domain.VarTypeInt}),
	}
	outcome := &domain.ExecutionOutcome{CaseResults: []domain.CaseResult{
		{Status: domain.StatusPassed, ActualOutput: "42", ExecutionTimeMs: 3},
		{Status: domain.StatusTimeout, ErrorMessage: "time limit exceeded"},
		{Status: domain.StatusPassed, ActualOutput: "42", ExecutionTimeMs: 5},
	}}

	rows := MapResults(cases, outcome)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !rows[0].Passed || rows[0].Status != domain.StatusPassed {
		t.Errorf("row 0 = %#v, want passed", rows[0])
	}
	if rows[1].Passed || rows[1].Status != domain.StatusTimeout {
		t.Errorf("row 1 = %#v, want failed timeout", rows[1])
	}
	if !rows[2].Passed {
		t.Errorf("row 2 = %#v, want passed", rows[2])
	}
	if rows[0].Input != "n = 1" || rows[0].Expected != "42" {
		t.Errorf("row 0 rendering = %#v", rows[0])
	}
	if rows[0].TimeMs != 3 {
		t.Errorf("row 0 TimeMs = %d, want 3", rows[0].TimeMs)
	}
}

func TestMapResultsPadsMissingRows(t *testing.T) {
	cases := []domain.TestCase{caseWith(), caseWith(), caseWith()}
	outcome := &domain.ExecutionOutcome{CaseResults: []domain.CaseResult{
		{Status: domain.StatusPassed, ActualOutput: "42"},
	}}

	rows := MapResults(cases, outcome)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i := 1; i < 3; i++ {
		if rows[i].Passed {
			t.Errorf("padded row %d should not pass", i)
		}
		if rows[i].Output != "No result returned for this test case" {
			t.Errorf("padded row %d output = %q", i, rows[i].Output)
		}
	}
}

func TestMapResultsNilOutcome(t *testing.T) {
	rows := MapResults([]domain.TestCase{caseWith()}, nil)
	if len(rows) != 1 || rows[0].Passed {
		t.Fatalf("rows = %#v", rows)
	}
}

func TestMapResultsOutputFallbacks(t *testing.T) {
	cases := []domain.TestCase{caseWith(), caseWith(), caseWith()}
	outcome := &domain.ExecutionOutcome{CaseResults: []domain.CaseResult{
		{Status: domain.StatusFailed},
		{Status: domain.StatusRuntimeError, ErrorMessage: "index out of bounds"},
		{Status: domain.StatusPassed, ActualOutput: `[1,\n2]`},
	}}

	rows := MapResults(cases, outcome)
	if rows[0].Output != "No output" {
		t.Errorf("row 0 output = %q, want %q", rows[0].Output, "No output")
	}
	if rows[1].Output != "Error: index out of bounds" {
		t.Errorf("row 1 output = %q", rows[1].Output)
	}
	if rows[2].Output != "[1,\n2]" {
		t.Errorf("row 2 output = %q, want unescaped newline", rows[2].Output)
	}
}

// Unknown statuses are open-ended and render as generic failure.
func TestMapResultsUnknownStatusFails(t *testing.T) {
	outcome := &domain.ExecutionOutcome{CaseResults: []domain.CaseResult{
		{Status: "sandbox_exploded", ActualOutput: "boom"},
	}}
	rows := MapResults([]domain.TestCase{caseWith()}, outcome)
	if rows[0].Passed {
		t.Errorf("unknown status must not pass: %#v", rows[0])
	}
	if rows[0].Status != "sandbox_exploded" {
		t.Errorf("status must pass through unchanged, got %q", rows[0].Status)
	}
}
