package secondary

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

type ProblemRepository interface {
	// GetProblem retrieves a problem with its test cases and per-language
	// code templates. Returns (nil, nil) when the problem does not exist.
	GetProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)

	// GetTestCaseConfig retrieves the test-case override attached to a
	// section-problem link. Returns (nil, nil) when the link exists but
	// carries no override, and a NotFoundError when the link is unknown.
	GetTestCaseConfig(ctx context.Context, linkID uuid.UUID) (*domain.TestCaseConfig, error)
}
