package workbench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/static/errs"
	"gitlab.com/codebench-2025.net/internal/varparse"
)

var _ IWorkbenchService = (*WorkbenchService)(nil)

// WorkbenchService implements the IWorkbenchService interface
type WorkbenchService struct {
	fixtureRepo secondary.FixtureRepository
	sessions    secondary.SessionStore
	executor    secondary.CodeExecutor
	logger      primary.Logger
}

// NewWorkbenchService creates a new workbench service
func NewWorkbenchService(
	fixtureRepo secondary.FixtureRepository,
	sessions secondary.SessionStore,
	executor secondary.CodeExecutor,
	logger primary.Logger,
) *WorkbenchService {
	return &WorkbenchService{
		fixtureRepo: fixtureRepo,
		sessions:    sessions,
		executor:    executor,
		logger:      logger,
	}
}

// OpenSession normalizes a problem's visible fixtures into editable test cases
func (s *WorkbenchService) OpenSession(ctx context.Context, problemID uuid.UUID) (*domain.Session, error) {
	s.logger.Info("Opening workbench session", "problemId", problemID)

	fixtures, err := s.fixtureRepo.GetProblemFixtures(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load fixtures", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	cases := make([]domain.TestCase, 0, len(fixtures))
	for _, fixture := range fixtures {
		if fixture.IsHidden {
			continue
		}
		cases = append(cases, domain.TestCase{
			ID:             uuid.New(),
			Variables:      varparse.ParseInput(fixture.Input),
			ExpectedOutput: fixture.ExpectedOutput,
		})
	}

	session := &domain.Session{
		ID:        uuid.New(),
		ProblemID: problemID,
		Cases:     cases,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to save session", "sessionId", session.ID, "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (s *WorkbenchService) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	return s.loadSession(ctx, sessionID)
}

// EditVariable replaces one variable's value in place. Sibling variables are
// never re-parsed, and the variable's name and type stay fixed.
func (s *WorkbenchService) EditVariable(ctx context.Context, sessionID uuid.UUID, caseIdx, varIdx int, newValue string) (*domain.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if caseIdx < 0 || caseIdx >= len(session.Cases) {
		return nil, errs.CaseIndexRange
	}
	if varIdx < 0 || varIdx >= len(session.Cases[caseIdx].Variables) {
		return nil, errs.VarIndexRange
	}

	session.Cases[caseIdx].Variables[varIdx].Value = newValue

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to save session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// AddCase appends a custom case cloned from the first case's variable template
func (s *WorkbenchService) AddCase(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var vars []domain.Variable
	if len(session.Cases) > 0 {
		template := session.Cases[0].Variables
		vars = make([]domain.Variable, len(template))
		for i, v := range template {
			vars[i] = domain.Variable{Name: v.Name, Type: v.Type, Value: v.Type.DefaultValue()}
		}
	} else {
		vars = []domain.Variable{{Name: "input", Type: domain.VarTypeString, Value: `""`}}
	}

	session.Cases = append(session.Cases, domain.TestCase{
		ID:        uuid.New(),
		Variables: vars,
		IsCustom:  true,
	})

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to save session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// RemoveCase removes a custom case. Removing a built-in fixture case is a
// no-op that returns the session unchanged.
func (s *WorkbenchService) RemoveCase(ctx context.Context, sessionID uuid.UUID, caseIdx int) (*domain.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if caseIdx < 0 || caseIdx >= len(session.Cases) {
		return nil, errs.CaseIndexRange
	}
	if !session.Cases[caseIdx].IsCustom {
		return session, nil
	}

	session.Cases = append(session.Cases[:caseIdx], session.Cases[caseIdx+1:]...)

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to save session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Run submits all current cases to the execution service and maps the
// response into result rows. The in-flight flag gates overlapping runs, and
// the run sequence number discards responses that a newer run has outpaced.
func (s *WorkbenchService) Run(ctx context.Context, sessionID uuid.UUID, submission domain.Submission) ([]domain.ResultRow, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RunInFlight {
		return nil, errs.RunInFlight
	}

	session.RunSeq++
	seq := session.RunSeq
	session.RunInFlight = true
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to save session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	rows := s.executeCases(ctx, session, submission)
	s.storeRunResults(ctx, sessionID, seq, rows)
	return rows, nil
}

// executeCases always terminates in a rendered state: execution failures
// become failing rows rather than errors.
func (s *WorkbenchService) executeCases(ctx context.Context, session *domain.Session, submission domain.Submission) []domain.ResultRow {
	if len(session.Cases) == 0 {
		return []domain.ResultRow{noCasesRow()}
	}

	submitted := make([]domain.SubmittedCase, len(session.Cases))
	for i, tc := range session.Cases {
		submitted[i] = domain.SubmittedCase{
			Input:          varparse.SerializeVariables(tc.Variables),
			ExpectedOutput: tc.ExpectedOutput,
		}
	}

	outcome, err := s.executor.Execute(ctx, &domain.ExecutionRequest{
		Code:          submission.Code,
		Language:      submission.Language,
		Cases:         submitted,
		EntryFunction: submission.EntryFunction,
		DriverCode:    submission.DriverCode,
	})
	if err != nil {
		s.logger.Error("Execution service call failed", "sessionId", session.ID, "error", err)
		return []domain.ResultRow{executionFailureRow(err)}
	}

	return MapResults(session.Cases, outcome)
}

// storeRunResults writes the rows back unless a newer run has claimed the
// session in the meantime.
func (s *WorkbenchService) storeRunResults(ctx context.Context, sessionID uuid.UUID, seq uint64, rows []domain.ResultRow) {
	latest, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil || latest == nil {
		s.logger.Warn("Session disappeared before results could be stored", "sessionId", sessionID, "error", err)
		return
	}
	if latest.RunSeq != seq {
		s.logger.Info("Discarding stale run results", "sessionId", sessionID, "seq", seq, "latestSeq", latest.RunSeq)
		return
	}

	latest.Results = rows
	latest.RunInFlight = false
	if err := s.sessions.SaveSession(ctx, latest); err != nil {
		s.logger.Error("Failed to store run results", "sessionId", sessionID, "error", err)
		// The flag must still come down: left set, it blocks every later
		// run until the store expires the session.
		latest.Results = nil
		if err := s.sessions.SaveSession(ctx, latest); err != nil {
			s.logger.Error("Failed to clear run flag", "sessionId", sessionID, "error", err)
		}
	}
}

// Results returns the rows stored by the latest completed run
func (s *WorkbenchService) Results(ctx context.Context, sessionID uuid.UUID) ([]domain.ResultRow, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Results, nil
}

// SaveFixture inserts or updates one of a problem's test fixtures. A zero
// fixture ID means a new fixture and gets one assigned.
func (s *WorkbenchService) SaveFixture(ctx context.Context, problemID uuid.UUID, fixture *domain.Fixture) (*domain.Fixture, error) {
	if fixture.ID == uuid.Nil {
		fixture.ID = uuid.New()
	}
	fixture.ProblemID = problemID

	if err := s.fixtureRepo.SaveFixture(ctx, fixture); err != nil {
		s.logger.Error("Failed to save fixture", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to save fixture: %w", err)
	}
	return fixture, nil
}

// ListProblems retrieves the problems available to open
func (s *WorkbenchService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	problems, err := s.fixtureRepo.ListProblems(ctx)
	if err != nil {
		s.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

func (s *WorkbenchService) loadSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to get session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, errs.SessionNotFound
	}
	return session, nil
}
