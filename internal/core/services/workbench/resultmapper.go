package workbench

import (
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/varparse"
)

// MapResults joins the execution service's per-case results with the
// submitted case list, positionally: row i pairs with case i. The row count
// always equals the case count; missing service rows are padded with
// synthetic failures. Passed mirrors the reported status exactly and is
// never derived from output comparison.
func MapResults(cases []domain.TestCase, outcome *domain.ExecutionOutcome) []domain.ResultRow {
	rows := make([]domain.ResultRow, len(cases))
	for i, tc := range cases {
		row := domain.ResultRow{
			Input:    varparse.FormatVariables(tc.Variables),
			Expected: varparse.UnescapeOutput(tc.ExpectedOutput),
			Status:   domain.StatusFailed,
		}

		if outcome == nil || i >= len(outcome.CaseResults) {
			row.Output = "No result returned for this test case"
			rows[i] = row
			continue
		}

		result := outcome.CaseResults[i]
		row.Status = result.Status
		row.Passed = result.Status == domain.StatusPassed
		row.Error = result.ErrorMessage
		row.TimeMs = result.ExecutionTimeMs

		switch {
		case result.ActualOutput == "" && result.ErrorMessage == "":
			row.Output = "No output"
		case result.ActualOutput == "":
			row.Output = "Error: " + result.ErrorMessage
		default:
			row.Output = varparse.UnescapeOutput(result.ActualOutput)
		}

		rows[i] = row
	}
	return rows
}

// executionFailureRow is the single row shown when the execution service
// call itself failed.
func executionFailureRow(err error) domain.ResultRow {
	return domain.ResultRow{
		Passed: false,
		Status: domain.StatusFailed,
		Output: "Error: " + err.Error(),
		Error:  err.Error(),
	}
}

// noCasesRow is the single row shown when there was nothing to submit.
func noCasesRow() domain.ResultRow {
	return domain.ResultRow{
		Passed: false,
		Status: domain.StatusFailed,
		Output: "No test cases available to run",
	}
}
