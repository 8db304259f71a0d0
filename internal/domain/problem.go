package domain

import "github.com/google/uuid"

// TestCase is a single input/expected-output pair owned by a problem.
// The order of a problem's test-case lists is significant: TestCaseConfig
// indices and ranges refer to these positions.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"output"`
}

// Problem is the read-only view of a coding problem used for grading.
// DriverCode and StarterCode are keyed by language name.
type Problem struct {
	ID               uuid.UUID
	Title            string
	ExampleTestCases []TestCase
	HiddenTestCases  []TestCase
	DriverCode       map[string]string
	StarterCode      map[string]string
}
