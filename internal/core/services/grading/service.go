package grading

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

// RunRequest asks for an ungraded run over a problem's sample test cases.
type RunRequest struct {
	ProblemID     uuid.UUID
	Code          string
	Language      string
	SectionLinkID *uuid.UUID
}

// SubmitRequest asks for a full graded submission over sample and hidden
// test cases.
type SubmitRequest struct {
	ProblemID     uuid.UUID
	Code          string
	Language      string
	UserID        string
	AssessmentID  *uuid.UUID
	SectionID     *uuid.UUID
	SectionLinkID *uuid.UUID
}

// IGradingService defines the public grading entry points
type IGradingService interface {
	// RunCode executes a submission against the problem's sample test cases
	RunCode(ctx context.Context, req *RunRequest) (*domain.RunOutcome, error)

	// SubmitCode grades a submission against sample plus hidden test cases,
	// scores it, and redacts hidden-case detail
	SubmitCode(ctx context.Context, req *SubmitRequest) (*domain.SubmitOutcome, error)

	// GetStarterCode returns the editor starter template for a language
	GetStarterCode(ctx context.Context, problemID uuid.UUID, language string) (string, error)
}
