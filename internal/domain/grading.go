package domain

// Placeholders substituted into hidden-category results before they leave
// the service. Hidden inputs and outputs must never reach the caller.
const (
	HiddenPlaceholder  = "[Hidden]"
	HiddenPassedOutput = "✓ Correct"
	HiddenFailedOutput = "✗ Incorrect"
)

// MaxScore is the score awarded for passing every graded test case.
const MaxScore = 100

// Summary aggregates pass/fail counts over a result list.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summarize counts the verdicts in results.
func Summarize(results []ExecutionResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// RunOutcome is returned for a sample-only run.
type RunOutcome struct {
	Success bool              `json:"success"`
	Results []ExecutionResult `json:"results"`
	Summary Summary           `json:"summary"`
}

// SubmitOutcome is returned for a full graded submission. HiddenResults
// carry redacted inputs and outputs.
type SubmitOutcome struct {
	Success       bool              `json:"success"`
	SampleResults []ExecutionResult `json:"sampleResults"`
	HiddenResults []ExecutionResult `json:"hiddenResults"`
	SampleSummary Summary           `json:"sampleSummary"`
	HiddenSummary Summary           `json:"hiddenSummary"`
	Summary       Summary           `json:"summary"`
	Score         int               `json:"score"`
	MaxScore      int               `json:"maxScore"`
}
