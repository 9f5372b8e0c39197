package domain

// RunStatus is the per-case status reported by the execution service.
// The vocabulary is open-ended: unrecognized values render as a generic
// failure, and only StatusPassed ever marks a row as passed.
type RunStatus string

const (
	StatusPassed           RunStatus = "passed"
	StatusFailed           RunStatus = "failed"
	StatusCompilationError RunStatus = "compilation_error"
	StatusTimeout          RunStatus = "timeout"
	StatusRuntimeError     RunStatus = "runtime_error"
)

// SubmittedCase is one test case as sent to the execution service.
type SubmittedCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	IsHidden       bool   `json:"is_hidden"`
}

// Submission is the program a run submits, with the optional entry
// function and driver snippet used when the code is a bare function body.
type Submission struct {
	Code          string `json:"code"`
	Language      string `json:"language"`
	EntryFunction string `json:"entry_function,omitempty"`
	DriverCode    string `json:"driver_code,omitempty"`
}

// ExecutionRequest is a batch of cases to run against a submitted program.
type ExecutionRequest struct {
	Code          string
	Language      string
	Cases         []SubmittedCase
	EntryFunction string
	DriverCode    string
}

// CaseResult is the execution service's verdict for a single case.
type CaseResult struct {
	Status          RunStatus
	ActualOutput    string
	ExpectedOutput  string
	ErrorMessage    string
	ExecutionTimeMs int64
	MemoryKB        int64
}

// ExecutionOutcome is the execution service's response for one run,
// with case results in submission order.
type ExecutionOutcome struct {
	CaseResults     []CaseResult
	ExecutionTimeMs int64
}

// ResultRow is the uniform per-case view of a run, positionally aligned
// with the submitted case list. Passed mirrors the service's status and is
// never recomputed locally from string comparison.
type ResultRow struct {
	Passed   bool      `json:"passed"`
	Status   RunStatus `json:"status"`
	Input    string    `json:"input,omitempty"`
	Expected string    `json:"expected,omitempty"`
	Output   string    `json:"output"`
	Error    string    `json:"error,omitempty"`
	TimeMs   int64     `json:"time_ms,omitempty"`
}
