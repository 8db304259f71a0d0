// Package judge0 implements the judge client port against a Judge0-style
// batched submission API.
package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/config"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

const pollFields = "token,status,stdout,stderr,compile_output,time,memory"

// Client talks to the external judge over HTTP. One instance is safe for
// concurrent use; grading calls share nothing else.
type Client struct {
	baseURL      string
	authToken    string
	httpClient   *http.Client
	maxRetries   int
	pollInterval time.Duration
	logger       primary.Logger
}

func NewClient(cfg *config.JudgeConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		authToken:    cfg.AuthToken,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		maxRetries:   cfg.MaxPollRetries,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}
}

// SubmitBatch submits one judge job per test case. Tokens come back in
// the same order as the input cases.
func (c *Client) SubmitBatch(ctx context.Context, sourceCode string, languageID int, testCases []domain.TestCase) ([]string, error) {
	payload := batchSubmitRequest{
		Submissions: make([]submissionPayload, 0, len(testCases)),
	}
	encodedSource := base64.StdEncoding.EncodeToString([]byte(sourceCode))
	for _, tc := range testCases {
		sub := submissionPayload{
			SourceCode: encodedSource,
			LanguageID: languageID,
			Stdin:      base64.StdEncoding.EncodeToString([]byte(tc.Input)),
		}
		if tc.ExpectedOutput != "" {
			sub.ExpectedOutput = base64.StdEncoding.EncodeToString([]byte(tc.ExpectedOutput))
		}
		payload.Submissions = append(payload.Submissions, sub)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &errs.ExternalServiceError{Op: "submit", Err: err}
	}

	url := c.baseURL + "/submissions/batch?base64_encoded=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &errs.ExternalServiceError{Op: "submit", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errs.ExternalServiceError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.drain(resp.Body)
		c.logger.Error("Judge rejected batch submission", "status", resp.StatusCode, "cases", len(testCases))
		return nil, &errs.ExternalServiceError{Op: "submit", StatusCode: resp.StatusCode}
	}

	var tokens []tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, &errs.ExternalServiceError{Op: "submit", Err: fmt.Errorf("decoding token response: %w", err)}
	}
	if len(tokens) != len(testCases) {
		return nil, &errs.ExternalServiceError{
			Op:  "submit",
			Err: fmt.Errorf("expected %d tokens, got %d", len(testCases), len(tokens)),
		}
	}

	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Token
	}
	c.logger.Debug("Submitted judge batch", "cases", len(testCases), "language_id", languageID)
	return out, nil
}

// PollBatch fetches the combined status of all tokens at a fixed interval
// until every case is terminal or the retry budget runs out.
func (c *Client) PollBatch(ctx context.Context, tokens []string) ([]domain.JudgeResult, error) {
	url := fmt.Sprintf("%s/submissions/batch?tokens=%s&base64_encoded=true&fields=%s",
		c.baseURL, strings.Join(tokens, ","), pollFields)

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		statuses, err := c.fetchBatch(ctx, url)
		if err != nil {
			return nil, err
		}

		if pendingCount(statuses) == 0 {
			results := make([]domain.JudgeResult, len(statuses))
			for i, s := range statuses {
				results[i] = decodeResult(s)
			}
			return results, nil
		}

		c.logger.Debug("Judge batch still running",
			"pending", pendingCount(statuses), "total", len(statuses), "attempt", attempt+1)

		select {
		case <-ctx.Done():
			return nil, &errs.ExternalServiceError{Op: "poll", Err: ctx.Err()}
		case <-time.After(c.pollInterval):
		}
	}

	c.logger.Error("Judge poll retry budget exhausted", "tokens", len(tokens), "attempts", c.maxRetries)
	return nil, &errs.TimeoutError{Op: "poll", Attempts: c.maxRetries}
}

func (c *Client) fetchBatch(ctx context.Context, url string) ([]submissionStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errs.ExternalServiceError{Op: "poll", Err: err}
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errs.ExternalServiceError{Op: "poll", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.drain(resp.Body)
		return nil, &errs.ExternalServiceError{Op: "poll", StatusCode: resp.StatusCode}
	}

	var batch batchStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, &errs.ExternalServiceError{Op: "poll", Err: fmt.Errorf("decoding status response: %w", err)}
	}
	return batch.Submissions, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("X-Auth-Token", c.authToken)
	}
}

func (c *Client) drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
}

func pendingCount(statuses []submissionStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Status.ID == domain.JudgeStatusInQueue || s.Status.ID == domain.JudgeStatusProcessing {
			n++
		}
	}
	return n
}

func decodeResult(s submissionStatus) domain.JudgeResult {
	r := domain.JudgeResult{
		Token:         s.Token,
		StatusID:      s.Status.ID,
		Status:        s.Status.Description,
		Stdout:        decodeField(s.Stdout),
		Stderr:        decodeField(s.Stderr),
		CompileOutput: decodeField(s.CompileOutput),
	}
	if s.Time != nil {
		r.Time = *s.Time
	}
	if s.Memory != nil {
		r.Memory = int(*s.Memory)
	}
	return r
}

// decodeField base64-decodes an optional wire field. A field that fails
// to decode is passed through raw rather than dropped.
func decodeField(field *string) string {
	if field == nil {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(*field))
	if err != nil {
		return *field
	}
	return string(decoded)
}
