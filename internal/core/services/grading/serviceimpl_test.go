package grading_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/services/grading"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

type fakeProblemRepo struct {
	problems map[uuid.UUID]*domain.Problem
	configs  map[uuid.UUID]*domain.TestCaseConfig
}

func (f *fakeProblemRepo) GetProblem(_ context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	return f.problems[problemID], nil
}

func (f *fakeProblemRepo) GetTestCaseConfig(_ context.Context, linkID uuid.UUID) (*domain.TestCaseConfig, error) {
	cfg, ok := f.configs[linkID]
	if !ok {
		return nil, &errs.NotFoundError{Resource: "section problem link", ID: linkID.String()}
	}
	return cfg, nil
}

func newService(judge *fakeJudge, problem *domain.Problem) (*grading.GradingService, uuid.UUID) {
	problemID := uuid.New()
	repo := &fakeProblemRepo{
		problems: map[uuid.UUID]*domain.Problem{problemID: problem},
		configs:  map[uuid.UUID]*domain.TestCaseConfig{},
	}
	orchestrator := newOrchestrator(judge)
	return grading.NewGradingService(repo, orchestrator, noopLogger{}), problemID
}

func twoSumProblem() *domain.Problem {
	return &domain.Problem{
		Title: "Two Sum",
		ExampleTestCases: []domain.TestCase{
			{Input: "1 2", ExpectedOutput: "3"},
			{Input: "2 3", ExpectedOutput: "5"},
			{Input: "4 4", ExpectedOutput: "8"},
		},
		HiddenTestCases: []domain.TestCase{
			{Input: "secret-in-1", ExpectedOutput: "secret-out-1"},
			{Input: "secret-in-2", ExpectedOutput: "secret-out-2"},
		},
		DriverCode:  map[string]string{"python": "print(solve())"},
		StarterCode: map[string]string{"python": "def solve():\n    pass"},
	}
}

func TestRunCodeAllSamplesPass(t *testing.T) {
	judge := newFakeJudge()
	svc, problemID := newService(judge, twoSumProblem())

	outcome, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID: problemID,
		Code:      "def solve(): ...",
		Language:  "python",
	})
	require.NoError(t, err)

	require.True(t, outcome.Success)
	require.Equal(t, domain.Summary{Total: 3, Passed: 3, Failed: 0}, outcome.Summary)
	require.Len(t, outcome.Results, 3)
	require.Equal(t, "1 2", outcome.Results[0].Input)
}

func TestRunCodeUnknownProblem(t *testing.T) {
	svc, _ := newService(newFakeJudge(), twoSumProblem())

	_, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID: uuid.New(),
		Code:      "x",
		Language:  "python",
	})
	var nf *errs.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestRunCodeUnknownLanguage(t *testing.T) {
	svc, problemID := newService(newFakeJudge(), twoSumProblem())

	_, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID: problemID,
		Code:      "x",
		Language:  "brainfuck",
	})
	var vErr *errs.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.ErrorIs(t, err, errs.UnsupportedLanguage)
}

func TestRunCodeUnknownSectionLink(t *testing.T) {
	svc, problemID := newService(newFakeJudge(), twoSumProblem())

	linkID := uuid.New()
	_, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID:     problemID,
		Code:          "x",
		Language:      "python",
		SectionLinkID: &linkID,
	})
	var nf *errs.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestRunCodeEmptySelection(t *testing.T) {
	judge := newFakeJudge()
	problem := twoSumProblem()
	problem.ExampleTestCases = nil
	svc, problemID := newService(judge, problem)

	_, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID: problemID,
		Code:      "x",
		Language:  "python",
	})
	var vErr *errs.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.ErrorIs(t, err, errs.EmptyTestCaseSet)
	require.Empty(t, judge.submitCalls)
}

func TestRunCodeAppliesSectionLinkConfig(t *testing.T) {
	judge := newFakeJudge()
	problem := twoSumProblem()
	problemID := uuid.New()
	linkID := uuid.New()
	repo := &fakeProblemRepo{
		problems: map[uuid.UUID]*domain.Problem{problemID: problem},
		configs: map[uuid.UUID]*domain.TestCaseConfig{
			linkID: {Example: &domain.CategorySelection{Indices: []int{2, 0}}},
		},
	}
	svc := grading.NewGradingService(repo, newOrchestrator(judge), noopLogger{})

	outcome, err := svc.RunCode(context.Background(), &grading.RunRequest{
		ProblemID:     problemID,
		Code:          "x",
		Language:      "python",
		SectionLinkID: &linkID,
	})
	require.NoError(t, err)
	require.Len(t, outcome.Results, 2)
	// Selection order is preserved.
	require.Equal(t, "4 4", outcome.Results[0].Input)
	require.Equal(t, "1 2", outcome.Results[1].Input)
}

func TestSubmitCodeScoresAndRedacts(t *testing.T) {
	judge := newFakeJudge()
	svc, problemID := newService(judge, twoSumProblem())

	outcome, err := svc.SubmitCode(context.Background(), &grading.SubmitRequest{
		ProblemID: problemID,
		Code:      "def solve(): ...",
		Language:  "python",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	require.True(t, outcome.Success)
	require.Equal(t, 100, outcome.Score)
	require.Equal(t, domain.MaxScore, outcome.MaxScore)
	require.Equal(t, domain.Summary{Total: 5, Passed: 5, Failed: 0}, outcome.Summary)
	require.Equal(t, domain.Summary{Total: 3, Passed: 3, Failed: 0}, outcome.SampleSummary)
	require.Equal(t, domain.Summary{Total: 2, Passed: 2, Failed: 0}, outcome.HiddenSummary)

	require.Len(t, outcome.HiddenResults, 2)
	for _, r := range outcome.HiddenResults {
		require.Equal(t, domain.HiddenPlaceholder, r.Input)
		require.Equal(t, domain.HiddenPlaceholder, r.ExpectedOutput)
		require.Equal(t, domain.HiddenPassedOutput, r.ActualOutput)
	}

	// No hidden test-case string may appear anywhere in the outcome.
	raw, err := json.Marshal(outcome)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret-in")
	require.NotContains(t, string(raw), "secret-out")
}

func TestSubmitCodeRedactsFailedHiddenCases(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["secret-in-2"] = domain.JudgeResult{
		StatusID: 4,
		Status:   "Wrong Answer",
		Stdout:   "secret-wrong-output",
	}
	svc, problemID := newService(judge, twoSumProblem())

	outcome, err := svc.SubmitCode(context.Background(), &grading.SubmitRequest{
		ProblemID: problemID,
		Code:      "x",
		Language:  "python",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	require.False(t, outcome.Success)
	require.Equal(t, 80, outcome.Score)
	require.Equal(t, domain.HiddenFailedOutput, outcome.HiddenResults[1].ActualOutput)

	raw, err := json.Marshal(outcome)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret-wrong-output")
}

func TestSubmitCodeCompileErrorTruncatesAtFirstCase(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["1 2"] = domain.JudgeResult{
		StatusID:      domain.JudgeStatusCompileErr,
		Status:        "Compilation Error",
		CompileOutput: "SyntaxError",
	}
	svc, problemID := newService(judge, twoSumProblem())

	outcome, err := svc.SubmitCode(context.Background(), &grading.SubmitRequest{
		ProblemID: problemID,
		Code:      "x",
		Language:  "python",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	require.False(t, outcome.Success)
	require.Equal(t, 0, outcome.Score)
	require.Len(t, outcome.SampleResults, 1)
	require.Empty(t, outcome.HiddenResults)
	require.Len(t, judge.submitCalls, 1)
}

func TestSubmitCodeEmptyCombinedSet(t *testing.T) {
	problem := twoSumProblem()
	problem.ExampleTestCases = nil
	problem.HiddenTestCases = nil
	svc, problemID := newService(newFakeJudge(), problem)

	_, err := svc.SubmitCode(context.Background(), &grading.SubmitRequest{
		ProblemID: problemID,
		Code:      "x",
		Language:  "python",
		UserID:    "user-1",
	})
	var vErr *errs.ValidationError
	require.True(t, errors.As(err, &vErr))
}

func TestRunCodeIsDeterministic(t *testing.T) {
	req := &grading.RunRequest{Code: "def solve(): ...", Language: "python"}

	run := func() string {
		judge := newFakeJudge()
		svc, problemID := newService(judge, twoSumProblem())
		r := *req
		r.ProblemID = problemID
		outcome, err := svc.RunCode(context.Background(), &r)
		require.NoError(t, err)
		raw, err := json.Marshal(outcome)
		require.NoError(t, err)
		return string(raw)
	}

	require.Equal(t, run(), run())
}

func TestGetStarterCode(t *testing.T) {
	svc, problemID := newService(newFakeJudge(), twoSumProblem())

	starter, err := svc.GetStarterCode(context.Background(), problemID, "python")
	require.NoError(t, err)
	require.Equal(t, "def solve():\n    pass", starter)

	_, err = svc.GetStarterCode(context.Background(), uuid.New(), "python")
	var nf *errs.NotFoundError
	require.True(t, errors.As(err, &nf))

	_, err = svc.GetStarterCode(context.Background(), problemID, "cobol")
	var vErr *errs.ValidationError
	require.True(t, errors.As(err, &vErr))
}
