package domain

// Judge backend status ids. Ids 1 and 2 are non-terminal; everything
// else is a final verdict for the submitted test case.
const (
	JudgeStatusInQueue    = 1
	JudgeStatusProcessing = 2
	JudgeStatusAccepted   = 3
	JudgeStatusTimeLimit  = 5
	JudgeStatusCompileErr = 6
	JudgeStatusMemLimit   = 9
)

// JudgeResult is one decoded verdict from the judge backend. Textual
// fields arrive base64-encoded on the wire and are already decoded here.
type JudgeResult struct {
	Token         string
	StatusID      int
	Status        string
	Stdout        string
	Stderr        string
	CompileOutput string
	Time          string
	Memory        int
}

// Pending reports whether the judge has not yet produced a final verdict.
func (r JudgeResult) Pending() bool {
	return r.StatusID == JudgeStatusInQueue || r.StatusID == JudgeStatusProcessing
}

// ErrorType classifies a test-case execution failure.
type ErrorType string

const (
	ErrorTypeNone        ErrorType = "none"
	ErrorTypeCompile     ErrorType = "compile"
	ErrorTypeTimeout     ErrorType = "timeout"
	ErrorTypeMemoryLimit ErrorType = "memory_limit"
	ErrorTypeRuntime     ErrorType = "runtime"
	ErrorTypeInternal    ErrorType = "internal"
)

// Fatal reports whether a verdict of this type makes every remaining
// test case pointless to run (the submission will fail them identically).
func (t ErrorType) Fatal() bool {
	return t == ErrorTypeCompile || t == ErrorTypeInternal
}

// ExecutionResult is the graded outcome of a single test case. Instances
// are built per call and never persisted by this service.
type ExecutionResult struct {
	Index          int       `json:"index"`
	Input          string    `json:"input"`
	ExpectedOutput string    `json:"expectedOutput"`
	ActualOutput   string    `json:"actualOutput"`
	Passed         bool      `json:"passed"`
	StatusCode     int       `json:"statusCode"`
	Status         string    `json:"status"`
	ErrorType      ErrorType `json:"errorType"`
	Time           string    `json:"time,omitempty"`
	Memory         int       `json:"memory,omitempty"`
}
