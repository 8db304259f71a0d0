package secondary

import (
	"context"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

// JudgeClient is the protocol adapter for the external sandboxed
// code-execution backend. It owns all network I/O to the judge.
type JudgeClient interface {
	// SubmitBatch submits one judge job per test case and returns one
	// opaque token per case, in input order. Submission is all-or-nothing:
	// any failure means no job was accepted.
	SubmitBatch(ctx context.Context, sourceCode string, languageID int, testCases []domain.TestCase) ([]string, error)

	// PollBatch blocks until every token has a terminal status, polling at
	// a fixed interval with a bounded retry budget. Exhausting the budget
	// yields a TimeoutError and no partial results.
	PollBatch(ctx context.Context, tokens []string) ([]domain.JudgeResult, error)
}
