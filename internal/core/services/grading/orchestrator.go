package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/config"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/secondary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

// Orchestrator runs a submission's test cases through the judge client.
// It submits a small initial batch to detect submissions that are broken
// for every case (won't compile, judge-side fault) and aborts before
// burning judge capacity on the rest; healthy submissions continue in
// fixed-size chunks. Results keep original test-case order.
type Orchestrator struct {
	judge            secondary.JudgeClient
	logger           primary.Logger
	initialBatchSize int
	chunkSize        int
}

func NewOrchestrator(judge secondary.JudgeClient, cfg *config.JudgeConfig, logger primary.Logger) *Orchestrator {
	initial := cfg.InitialBatchSize
	if initial <= 0 {
		initial = 5
	}
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = 20
	}
	return &Orchestrator{
		judge:            judge,
		logger:           logger,
		initialBatchSize: initial,
		chunkSize:        chunk,
	}
}

// Execute grades testCases against sourceCode. A fatal verdict inside the
// initial batch truncates the result list at that case; that partial list
// is a successful outcome, not an error. Judge client failures abort the
// whole call with no partial results.
func (o *Orchestrator) Execute(ctx context.Context, sourceCode string, languageID int, testCases []domain.TestCase) ([]domain.ExecutionResult, error) {
	if len(testCases) == 0 {
		return nil, &errs.ValidationError{Msg: "no test cases to execute", Err: errs.EmptyTestCaseSet}
	}

	initial := o.initialBatchSize
	if initial > len(testCases) {
		initial = len(testCases)
	}

	initialResults, err := o.runBatch(ctx, sourceCode, languageID, testCases[:initial], 0)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ExecutionResult, 0, len(testCases))
	for _, r := range initialResults {
		results = append(results, r)
		if r.ErrorType.Fatal() {
			o.logger.Info("Aborting remaining test cases after fatal verdict",
				"index", r.Index, "errorType", r.ErrorType, "status", r.Status)
			return results, nil
		}
	}

	for start := initial; start < len(testCases); start += o.chunkSize {
		end := start + o.chunkSize
		if end > len(testCases) {
			end = len(testCases)
		}
		chunkResults, err := o.runBatch(ctx, sourceCode, languageID, testCases[start:end], start)
		if err != nil {
			return nil, err
		}
		results = append(results, chunkResults...)
	}

	return results, nil
}

func (o *Orchestrator) runBatch(ctx context.Context, sourceCode string, languageID int, batch []domain.TestCase, offset int) ([]domain.ExecutionResult, error) {
	tokens, err := o.judge.SubmitBatch(ctx, sourceCode, languageID, batch)
	if err != nil {
		return nil, err
	}

	raws, err := o.judge.PollBatch(ctx, tokens)
	if err != nil {
		return nil, err
	}
	if len(raws) != len(batch) {
		return nil, &errs.ExternalServiceError{
			Op:  "poll",
			Err: fmt.Errorf("expected %d results, got %d", len(batch), len(raws)),
		}
	}

	results := make([]domain.ExecutionResult, len(batch))
	for i, raw := range raws {
		results[i] = classify(offset+i, batch[i], raw)
	}
	return results, nil
}

// classify turns one raw judge verdict into a structured result. An
// accepted status is only a pass candidate: the trimmed outputs must
// still match.
func classify(index int, tc domain.TestCase, raw domain.JudgeResult) domain.ExecutionResult {
	errType := classifyStatus(raw.StatusID)
	passed := raw.StatusID == domain.JudgeStatusAccepted &&
		strings.TrimSpace(raw.Stdout) == strings.TrimSpace(tc.ExpectedOutput)

	actual := raw.Stdout
	switch {
	case errType == domain.ErrorTypeCompile && raw.CompileOutput != "":
		actual = raw.CompileOutput
	case actual == "" && raw.Stderr != "":
		actual = raw.Stderr
	}

	return domain.ExecutionResult{
		Index:          index,
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
		ActualOutput:   actual,
		Passed:         passed,
		StatusCode:     raw.StatusID,
		Status:         raw.Status,
		ErrorType:      errType,
		Time:           raw.Time,
		Memory:         raw.Memory,
	}
}

// classifyStatus maps the backend's numeric status to an error type.
// Memory limit (9) sits inside the runtime range and is checked first.
func classifyStatus(statusID int) domain.ErrorType {
	switch {
	case statusID == domain.JudgeStatusCompileErr:
		return domain.ErrorTypeCompile
	case statusID == domain.JudgeStatusTimeLimit:
		return domain.ErrorTypeTimeout
	case statusID == domain.JudgeStatusMemLimit:
		return domain.ErrorTypeMemoryLimit
	case statusID >= 7 && statusID <= 12:
		return domain.ErrorTypeRuntime
	case statusID >= 13:
		return domain.ErrorTypeInternal
	default:
		return domain.ErrorTypeNone
	}
}
