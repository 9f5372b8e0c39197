// package fixturerepository contains the PostgreSQL implementation of the
// fixture repository
package fixturerepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ secondary.FixtureRepository = (*FixtureRepository)(nil)

// FixtureRepository implements the FixtureRepository interface with PostgreSQL
type FixtureRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewFixtureRepository creates a new PostgreSQL fixture repository
func NewFixtureRepository(db *sqlx.DB, logger primary.Logger) *FixtureRepository {
	return &FixtureRepository{
		db:     db,
		logger: logger,
	}
}

// GetProblemFixtures retrieves a problem's fixtures in position order
func (r *FixtureRepository) GetProblemFixtures(ctx context.Context, problemID uuid.UUID) ([]*domain.Fixture, error) {
	query := `
		SELECT id, problem_id, input, expected_output, is_hidden, position
		FROM test_fixtures
		WHERE problem_id = $1
		ORDER BY position
	`

	var fixtures []*domain.Fixture
	if err := r.db.SelectContext(ctx, &fixtures, query, problemID); err != nil {
		r.logger.Error("Failed to get fixtures", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}

	return fixtures, nil
}

// SaveFixture inserts or updates a fixture
func (r *FixtureRepository) SaveFixture(ctx context.Context, fixture *domain.Fixture) error {
	query := `
		INSERT INTO test_fixtures (
			id, problem_id, input, expected_output, is_hidden, position
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			input = EXCLUDED.input,
			expected_output = EXCLUDED.expected_output,
			is_hidden = EXCLUDED.is_hidden,
			position = EXCLUDED.position
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		fixture.ID,
		fixture.ProblemID,
		fixture.Input,
		fixture.ExpectedOutput,
		fixture.IsHidden,
		fixture.Position,
	)
	if err != nil {
		r.logger.Error("Failed to save fixture", "fixtureId", fixture.ID, "error", err)
		return fmt.Errorf("failed to save fixture: %w", err)
	}

	return nil
}

// ListProblems retrieves all problems
func (r *FixtureRepository) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	query := `SELECT id, title FROM problems ORDER BY title`

	var problems []*domain.Problem
	if err := r.db.SelectContext(ctx, &problems, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return problems, nil
}
