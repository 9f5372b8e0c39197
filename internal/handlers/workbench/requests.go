package workbench

import "github.com/google/uuid"

// OpenSessionRequest represents a request to open a workbench session
type OpenSessionRequest struct {
	ProblemID uuid.UUID `json:"problem_id"`
}

// EditVariableRequest represents a request to replace one variable's value
type EditVariableRequest struct {
	Value string `json:"value"`
}

// RunRequest represents a request to run the session's test cases
type RunRequest struct {
	Code          string `json:"code"`
	Language      string `json:"language"`
	EntryFunction string `json:"entry_function"`
	DriverCode    string `json:"driver_code"`
}

// SaveFixtureRequest represents a request to create or update a problem fixture
type SaveFixtureRequest struct {
	ID             uuid.UUID `json:"id"`
	Input          string    `json:"input"`
	ExpectedOutput string    `json:"expected_output"`
	IsHidden       bool      `json:"is_hidden"`
	Position       int       `json:"position"`
}
