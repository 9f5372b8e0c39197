package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// FixtureRepository defines the interface for stored problems and their
// test fixtures.
type FixtureRepository interface {
	// GetProblemFixtures retrieves a problem's fixtures in position order
	GetProblemFixtures(ctx context.Context, problemID uuid.UUID) ([]*domain.Fixture, error)

	// SaveFixture inserts or updates a fixture
	SaveFixture(ctx context.Context, fixture *domain.Fixture) error

	// ListProblems retrieves all problems
	ListProblems(ctx context.Context) ([]*domain.Problem, error)
}
