package grading

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/secondary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService implements the grading façade
type GradingService struct {
	problems     secondary.ProblemRepository
	orchestrator *Orchestrator
	logger       primary.Logger
}

// NewGradingService creates a new grading service
func NewGradingService(problems secondary.ProblemRepository, orchestrator *Orchestrator, logger primary.Logger) *GradingService {
	return &GradingService{
		problems:     problems,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// RunCode executes a submission against the selected sample test cases
func (s *GradingService) RunCode(ctx context.Context, req *RunRequest) (*domain.RunOutcome, error) {
	languageID, ok := domain.LanguageID(req.Language)
	if !ok {
		return nil, &errs.ValidationError{Msg: "language " + req.Language, Err: errs.UnsupportedLanguage}
	}

	problem, cfg, err := s.loadProblem(ctx, req.ProblemID, req.SectionLinkID)
	if err != nil {
		return nil, err
	}

	sample, err := SelectTestCases(problem.ExampleTestCases, exampleSelection(cfg), "example")
	if err != nil {
		return nil, err
	}
	if len(sample) == 0 {
		return nil, &errs.ValidationError{Msg: "no sample test cases", Err: errs.EmptyTestCaseSet}
	}

	source := AssembleSource(req.Code, problem.DriverCode, req.Language)

	s.logger.Info("Running sample test cases",
		"problemId", req.ProblemID, "language", req.Language, "cases", len(sample))

	results, err := s.orchestrator.Execute(ctx, source, languageID, sample)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(results)
	return &domain.RunOutcome{
		Success: summary.Passed == summary.Total,
		Results: results,
		Summary: summary,
	}, nil
}

// SubmitCode grades a submission against sample plus hidden test cases in
// a single orchestrator pass, then splits at the sample/hidden boundary
// and redacts the hidden half.
func (s *GradingService) SubmitCode(ctx context.Context, req *SubmitRequest) (*domain.SubmitOutcome, error) {
	languageID, ok := domain.LanguageID(req.Language)
	if !ok {
		return nil, &errs.ValidationError{Msg: "language " + req.Language, Err: errs.UnsupportedLanguage}
	}

	problem, cfg, err := s.loadProblem(ctx, req.ProblemID, req.SectionLinkID)
	if err != nil {
		return nil, err
	}

	sample, err := SelectTestCases(problem.ExampleTestCases, exampleSelection(cfg), "example")
	if err != nil {
		return nil, err
	}
	hidden, err := SelectTestCases(problem.HiddenTestCases, hiddenSelection(cfg), "hidden")
	if err != nil {
		return nil, err
	}
	if len(sample)+len(hidden) == 0 {
		return nil, &errs.ValidationError{Msg: "nothing to grade", Err: errs.EmptyTestCaseSet}
	}

	// Sample cases run first so result indices map back to categories by
	// position alone.
	combined := make([]domain.TestCase, 0, len(sample)+len(hidden))
	combined = append(combined, sample...)
	combined = append(combined, hidden...)

	source := AssembleSource(req.Code, problem.DriverCode, req.Language)

	submissionID := uuid.New()
	s.logger.Info("Grading submission",
		"submissionId", submissionID, "problemId", req.ProblemID, "userId", req.UserID,
		"language", req.Language, "sampleCases", len(sample), "hiddenCases", len(hidden))

	results, err := s.orchestrator.Execute(ctx, source, languageID, combined)
	if err != nil {
		return nil, err
	}

	boundary := len(sample)
	if boundary > len(results) {
		boundary = len(results)
	}
	sampleResults := results[:boundary]
	hiddenResults := make([]domain.ExecutionResult, len(results)-boundary)
	for i, r := range results[boundary:] {
		hiddenResults[i] = redactHidden(r)
	}

	summary := domain.Summarize(results)
	score := 0
	if summary.Total > 0 {
		score = int(math.Round(float64(summary.Passed) / float64(summary.Total) * domain.MaxScore))
	}

	s.logger.Info("Submission graded",
		"submissionId", submissionID, "passed", summary.Passed, "total", summary.Total, "score", score)

	return &domain.SubmitOutcome{
		Success:       summary.Passed == summary.Total,
		SampleResults: sampleResults,
		HiddenResults: hiddenResults,
		SampleSummary: domain.Summarize(sampleResults),
		HiddenSummary: domain.Summarize(hiddenResults),
		Summary:       summary,
		Score:         score,
		MaxScore:      domain.MaxScore,
	}, nil
}

// GetStarterCode returns the editor starter template for a language
func (s *GradingService) GetStarterCode(ctx context.Context, problemID uuid.UUID, language string) (string, error) {
	if _, ok := domain.LanguageID(language); !ok {
		return "", &errs.ValidationError{Msg: "language " + language, Err: errs.UnsupportedLanguage}
	}

	problem, err := s.problems.GetProblem(ctx, problemID)
	if err != nil {
		return "", err
	}
	if problem == nil {
		return "", &errs.NotFoundError{Resource: "problem", ID: problemID.String()}
	}

	return problem.StarterCode[domain.NormalizeLanguage(language)], nil
}

func (s *GradingService) loadProblem(ctx context.Context, problemID uuid.UUID, linkID *uuid.UUID) (*domain.Problem, *domain.TestCaseConfig, error) {
	problem, err := s.problems.GetProblem(ctx, problemID)
	if err != nil {
		return nil, nil, err
	}
	if problem == nil {
		return nil, nil, &errs.NotFoundError{Resource: "problem", ID: problemID.String()}
	}

	if linkID == nil {
		return problem, nil, nil
	}
	cfg, err := s.problems.GetTestCaseConfig(ctx, *linkID)
	if err != nil {
		return nil, nil, err
	}
	return problem, cfg, nil
}

func exampleSelection(cfg *domain.TestCaseConfig) *domain.CategorySelection {
	if cfg == nil {
		return nil
	}
	return cfg.Example
}

func hiddenSelection(cfg *domain.TestCaseConfig) *domain.CategorySelection {
	if cfg == nil {
		return nil
	}
	return cfg.Hidden
}

// redactHidden replaces everything a hidden test case could leak with
// fixed placeholders. Only the pass/fail bit survives.
func redactHidden(r domain.ExecutionResult) domain.ExecutionResult {
	r.Input = domain.HiddenPlaceholder
	r.ExpectedOutput = domain.HiddenPlaceholder
	if r.Passed {
		r.ActualOutput = domain.HiddenPassedOutput
	} else {
		r.ActualOutput = domain.HiddenFailedOutput
	}
	return r
}
