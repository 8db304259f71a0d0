package grading

import "github.com/google/uuid"

// RunCodeRequest represents a request to run sample test cases
type RunCodeRequest struct {
	Code          string     `json:"code"`
	Language      string     `json:"language"`
	SectionLinkID *uuid.UUID `json:"sectionLinkId,omitempty"`
}

// SubmitCodeRequest represents a request to grade a submission
type SubmitCodeRequest struct {
	Code          string     `json:"code"`
	Language      string     `json:"language"`
	AssessmentID  *uuid.UUID `json:"assessmentId,omitempty"`
	SectionID     *uuid.UUID `json:"sectionId,omitempty"`
	SectionLinkID *uuid.UUID `json:"sectionLinkId,omitempty"`
}

// StarterCodeResponse carries the editor template for one language
type StarterCodeResponse struct {
	Language    string `json:"language"`
	StarterCode string `json:"starterCode"`
}
