// Package oracle talks to the external trivia oracle: a text-generation
// endpoint that produces questions and judges answers. The oracle is
// untrusted and fallible; callers treat verification failure as an
// incorrect answer.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/interfaces"
	"go.uber.org/zap"
)

// Error wraps a failed oracle exchange.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client is an HTTP client for the trivia oracle
type Client struct {
	httpClient *http.Client
	config     config.OracleConfig
	logger     *zap.Logger
}

// Ensure Client satisfies the interfaces.TriviaOracle interface
var _ interfaces.TriviaOracle = (*Client)(nil)

// NewClient creates a new oracle client
func NewClient(cfg config.OracleConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     cfg,
		logger:     logger,
	}
}

// GenerateQuestion asks the oracle for a single trivia question on the
// given topic.
func (c *Client) GenerateQuestion(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("Generate a single, unique, and challenging trivia question about %s. The question should be suitable for a test. Do not provide the answer or any preamble. Just the question text.", topic)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", &Error{Op: "generate question", Err: err}
	}

	c.logger.Debug("Generated trivia question", zap.String("topic", topic))
	return strings.TrimSpace(text), nil
}

// VerifyAnswer asks the oracle whether the answer is correct. The
// protocol is a single-word CORRECT/INCORRECT verdict; anything else
// counts as incorrect.
func (c *Client) VerifyAnswer(ctx context.Context, question, answer string) (bool, error) {
	prompt := fmt.Sprintf(`Question: %q
User's Answer: %q
Is the user's answer correct or very close to correct? Be lenient with minor spelling or phrasing differences. Respond with only the word "CORRECT" or "INCORRECT".`, question, answer)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return false, &Error{Op: "verify answer", Err: err}
	}

	verdict := strings.ToUpper(strings.TrimSpace(text))
	c.logger.Debug("Verified trivia answer", zap.String("verdict", verdict))
	return verdict == "CORRECT", nil
}

// Request/response shapes for the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// generate posts a single prompt and returns the first candidate's text
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("x-goog-api-key", c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
