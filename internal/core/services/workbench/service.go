package workbench

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// IWorkbenchService defines the interface for the test-case workbench: the
// editable state behind the code editor's test-case panel.
type IWorkbenchService interface {
	// OpenSession normalizes a problem's visible fixtures into editable
	// test cases and starts a new session
	OpenSession(ctx context.Context, problemID uuid.UUID) (*domain.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)

	// EditVariable replaces one variable's value, identified by case index
	// and variable index; names, types, and sibling variables are untouched
	EditVariable(ctx context.Context, sessionID uuid.UUID, caseIdx, varIdx int, newValue string) (*domain.Session, error)

	// AddCase appends a custom case cloned from the first case's variable
	// template with type-appropriate default values
	AddCase(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)

	// RemoveCase removes a custom case; built-in fixture cases are kept
	RemoveCase(ctx context.Context, sessionID uuid.UUID, caseIdx int) (*domain.Session, error)

	// Run serializes every case, submits the batch to the execution
	// service, and returns one result row per case. Execution failures
	// come back as failing rows, never as errors.
	Run(ctx context.Context, sessionID uuid.UUID, submission domain.Submission) ([]domain.ResultRow, error)

	// Results returns the rows stored by the latest completed run
	Results(ctx context.Context, sessionID uuid.UUID) ([]domain.ResultRow, error)

	// ListProblems retrieves the problems available to open
	ListProblems(ctx context.Context) ([]*domain.Problem, error)

	// SaveFixture inserts or updates one of a problem's test fixtures
	SaveFixture(ctx context.Context, problemID uuid.UUID, fixture *domain.Fixture) (*domain.Fixture, error)
}
