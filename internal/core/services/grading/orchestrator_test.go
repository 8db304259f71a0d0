package grading_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/config"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/services/grading"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

// fakeJudge scripts verdicts per test-case input. Unscripted cases echo
// their expected output with an accepted status.
type fakeJudge struct {
	verdicts    map[string]domain.JudgeResult
	submitCalls [][]domain.TestCase
	pending     map[string][]domain.TestCase
	submitErr   error
	pollErr     error
}

func newFakeJudge() *fakeJudge {
	return &fakeJudge{
		verdicts: map[string]domain.JudgeResult{},
		pending:  map[string][]domain.TestCase{},
	}
}

func (f *fakeJudge) SubmitBatch(_ context.Context, _ string, _ int, testCases []domain.TestCase) ([]string, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitCalls = append(f.submitCalls, testCases)
	batchID := fmt.Sprintf("batch-%d", len(f.submitCalls))
	f.pending[batchID] = testCases
	tokens := make([]string, len(testCases))
	for i := range testCases {
		tokens[i] = fmt.Sprintf("%s-%d", batchID, i)
	}
	return tokens, nil
}

func (f *fakeJudge) PollBatch(_ context.Context, tokens []string) ([]domain.JudgeResult, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	batchID := fmt.Sprintf("batch-%d", len(f.submitCalls))
	batch := f.pending[batchID]
	results := make([]domain.JudgeResult, len(tokens))
	for i := range tokens {
		if v, ok := f.verdicts[batch[i].Input]; ok {
			v.Token = tokens[i]
			results[i] = v
			continue
		}
		results[i] = domain.JudgeResult{
			Token:    tokens[i],
			StatusID: domain.JudgeStatusAccepted,
			Status:   "Accepted",
			Stdout:   batch[i].ExpectedOutput,
			Time:     "0.01",
			Memory:   1024,
		}
	}
	return results, nil
}

func newOrchestrator(judge *fakeJudge) *grading.Orchestrator {
	cfg := &config.JudgeConfig{InitialBatchSize: 5, ChunkSize: 20}
	return grading.NewOrchestrator(judge, cfg, noopLogger{})
}

func TestOrchestratorAllPassKeepsOrder(t *testing.T) {
	judge := newFakeJudge()
	o := newOrchestrator(judge)

	cases := makeCases(10)
	results, err := o.Execute(context.Background(), "src", 71, cases)
	require.NoError(t, err)
	require.Len(t, results, 10)

	for i, r := range results {
		require.Equal(t, i, r.Index)
		require.Equal(t, cases[i].Input, r.Input)
		require.True(t, r.Passed)
		require.Equal(t, domain.ErrorTypeNone, r.ErrorType)
	}

	summary := domain.Summarize(results)
	require.Equal(t, domain.Summary{Total: 10, Passed: 10, Failed: 0}, summary)

	// 5 initial + 5 remainder in one chunk.
	require.Len(t, judge.submitCalls, 2)
	require.Len(t, judge.submitCalls[0], 5)
	require.Len(t, judge.submitCalls[1], 5)
}

func TestOrchestratorFailFastOnCompileError(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["in-0"] = domain.JudgeResult{
		StatusID:      domain.JudgeStatusCompileErr,
		Status:        "Compilation Error",
		CompileOutput: "error: ';' expected",
	}
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 62, makeCases(30))
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.Equal(t, domain.ErrorTypeCompile, results[0].ErrorType)
	require.False(t, results[0].Passed)
	require.Equal(t, "error: ';' expected", results[0].ActualOutput)

	// Only the initial batch ever reached the judge.
	require.Len(t, judge.submitCalls, 1)
	require.Len(t, judge.submitCalls[0], 5)
}

func TestOrchestratorFailFastOnInternalError(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["in-2"] = domain.JudgeResult{
		StatusID: 13,
		Status:   "Internal Error",
	}
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 71, makeCases(12))
	require.NoError(t, err)

	// Results up to and including the fatal case.
	require.Len(t, results, 3)
	require.Equal(t, domain.ErrorTypeInternal, results[2].ErrorType)
	require.Len(t, judge.submitCalls, 1)
}

func TestOrchestratorRuntimeErrorsDoNotAbort(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["in-1"] = domain.JudgeResult{
		StatusID: 11,
		Status:   "Runtime Error (NZEC)",
		Stderr:   "panic",
	}
	judge.verdicts["in-3"] = domain.JudgeResult{
		StatusID: domain.JudgeStatusTimeLimit,
		Status:   "Time Limit Exceeded",
	}
	judge.verdicts["in-4"] = domain.JudgeResult{
		StatusID: domain.JudgeStatusMemLimit,
		Status:   "Memory Limit Exceeded",
	}
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 71, makeCases(8))
	require.NoError(t, err)
	require.Len(t, results, 8)

	require.Equal(t, domain.ErrorTypeRuntime, results[1].ErrorType)
	require.Equal(t, "panic", results[1].ActualOutput)
	require.Equal(t, domain.ErrorTypeTimeout, results[3].ErrorType)
	require.Equal(t, domain.ErrorTypeMemoryLimit, results[4].ErrorType)
}

func TestOrchestratorChunksRemainder(t *testing.T) {
	judge := newFakeJudge()
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 71, makeCases(50))
	require.NoError(t, err)
	require.Len(t, results, 50)

	sizes := make([]int, len(judge.submitCalls))
	for i, call := range judge.submitCalls {
		sizes[i] = len(call)
	}
	require.Equal(t, []int{5, 20, 20, 5}, sizes)

	for i, r := range results {
		require.Equal(t, i, r.Index)
	}
}

func TestOrchestratorWrongAnswerIsNotAnError(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["in-0"] = domain.JudgeResult{
		StatusID: 4,
		Status:   "Wrong Answer",
		Stdout:   "bogus",
	}
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 71, makeCases(2))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.False(t, results[0].Passed)
	require.Equal(t, domain.ErrorTypeNone, results[0].ErrorType)
	require.True(t, results[1].Passed)
}

func TestOrchestratorAcceptedStatusStillComparesOutput(t *testing.T) {
	judge := newFakeJudge()
	judge.verdicts["in-1"] = domain.JudgeResult{
		StatusID: domain.JudgeStatusAccepted,
		Status:   "Accepted",
		Stdout:   "out-1-with-extra",
	}
	judge.verdicts["in-2"] = domain.JudgeResult{
		StatusID: domain.JudgeStatusAccepted,
		Status:   "Accepted",
		Stdout:   "  out-2\n",
	}
	o := newOrchestrator(judge)

	results, err := o.Execute(context.Background(), "src", 71, makeCases(3))
	require.NoError(t, err)
	require.False(t, results[1].Passed)
	// Trailing whitespace is ignored when comparing.
	require.True(t, results[2].Passed)
}

func TestOrchestratorPropagatesJudgeErrors(t *testing.T) {
	judge := newFakeJudge()
	judge.submitErr = &errs.ExternalServiceError{Op: "submit", StatusCode: 503}
	o := newOrchestrator(judge)

	_, err := o.Execute(context.Background(), "src", 71, makeCases(3))
	var extErr *errs.ExternalServiceError
	require.True(t, errors.As(err, &extErr))

	judge = newFakeJudge()
	judge.pollErr = &errs.TimeoutError{Op: "poll", Attempts: 30}
	o = newOrchestrator(judge)

	_, err = o.Execute(context.Background(), "src", 71, makeCases(3))
	var toErr *errs.TimeoutError
	require.True(t, errors.As(err, &toErr))
}

func TestOrchestratorRejectsEmptyCaseList(t *testing.T) {
	o := newOrchestrator(newFakeJudge())
	_, err := o.Execute(context.Background(), "src", 71, nil)
	var vErr *errs.ValidationError
	require.True(t, errors.As(err, &vErr))
}
