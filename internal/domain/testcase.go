package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fixture is a stored test case attached to a problem, as authored by the
// problem setter. Input is free-form text in any of the supported dialects.
type Fixture struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ProblemID      uuid.UUID `db:"problem_id" json:"problem_id"`
	Input          string    `db:"input" json:"input"`
	ExpectedOutput string    `db:"expected_output" json:"expected_output"`
	IsHidden       bool      `db:"is_hidden" json:"is_hidden"`
	Position       int       `db:"position" json:"position"`
}

// Problem is a coding problem that fixtures hang off.
type Problem struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Title string    `db:"title" json:"title"`
}

// TestCase is one editable test case in a workbench session: the parsed
// variables of a fixture's input, or a user-added custom case.
// Variable names and types are fixed at creation; only values change through
// edits. Built-in (non-custom) cases cannot be removed.
type TestCase struct {
	ID             uuid.UUID  `json:"id"`
	Variables      []Variable `json:"variables"`
	ExpectedOutput string     `json:"expected_output"`
	IsCustom       bool       `json:"is_custom"`
}

// Session is the full editable state of one workbench: the case list, the
// last run's results, and the run bookkeeping that gates overlapping runs.
// RunSeq increases by one per started run; a run's results are only stored
// if its sequence still matches the session's latest when it completes.
type Session struct {
	ID          uuid.UUID   `json:"id"`
	ProblemID   uuid.UUID   `json:"problem_id"`
	Cases       []TestCase  `json:"cases"`
	Results     []ResultRow `json:"results,omitempty"`
	RunSeq      uint64      `json:"run_seq"`
	RunInFlight bool        `json:"run_in_flight"`
	CreatedAt   time.Time   `json:"created_at"`
}
