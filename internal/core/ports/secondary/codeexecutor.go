package secondary

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// CodeExecutor runs a submitted program against an ordered set of test
// cases on the remote execution service. Implementations must preserve
// submission order in the returned case results.
type CodeExecutor interface {
	Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionOutcome, error)
}
