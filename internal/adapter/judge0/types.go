package judge0

// Wire types for the judge's batch submission API. All textual payload
// fields travel base64-encoded in both directions.

type submissionPayload struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output,omitempty"`
}

type batchSubmitRequest struct {
	Submissions []submissionPayload `json:"submissions"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type statusPayload struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type submissionStatus struct {
	Token         string        `json:"token"`
	Status        statusPayload `json:"status"`
	Stdout        *string       `json:"stdout"`
	Stderr        *string       `json:"stderr"`
	CompileOutput *string       `json:"compile_output"`
	Time          *string       `json:"time"`
	Memory        *float64      `json:"memory"`
}

type batchStatusResponse struct {
	Submissions []submissionStatus `json:"submissions"`
}
