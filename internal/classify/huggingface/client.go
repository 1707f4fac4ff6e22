package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"eduassist-backend/internal/classify"
)

const apiURLFormat = "https://api-inference.huggingface.co/models/%s"

// Client implements classify.Classifier using the Hugging Face zero-shot
// classification inference API.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new Hugging Face zero-shot classifier client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("HF_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("HF_MODEL is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("HF_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: fmt.Sprintf(apiURLFormat, model),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type classifyResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
	Error  string    `json:"error,omitempty"`
}

// Classify submits the query with the fixed candidate label set and returns the
// top label. Any transport failure or malformed response maps to
// classify.ErrUnavailable; the caller decides what to do, no defaults are guessed.
func (c *Client) Classify(ctx context.Context, query string) (classify.Classification, error) {
	payload, err := json.Marshal(classifyRequest{
		Inputs: query,
		Parameters: classifyParameters{
			CandidateLabels: classify.CandidateLabels,
		},
	})
	if err != nil {
		return classify.Classification{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return classify.Classification{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return classify.Classification{}, fmt.Errorf("%w: request timeout: %v", classify.ErrUnavailable, err)
		}
		return classify.Classification{}, fmt.Errorf("%w: %v", classify.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify.Classification{}, fmt.Errorf("%w: read response: %v", classify.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return classify.Classification{}, fmt.Errorf("%w: status %d", classify.ErrUnavailable, resp.StatusCode)
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return classify.Classification{}, fmt.Errorf("%w: response parse: %v", classify.ErrUnavailable, err)
	}
	if parsed.Error != "" {
		return classify.Classification{}, fmt.Errorf("%w: %s", classify.ErrUnavailable, parsed.Error)
	}
	if len(parsed.Labels) == 0 || len(parsed.Labels) != len(parsed.Scores) {
		return classify.Classification{}, fmt.Errorf("%w: response missing labels", classify.ErrUnavailable)
	}

	label, ok := classify.LabelFor(parsed.Labels[0])
	if !ok {
		return classify.Classification{}, fmt.Errorf("%w: unknown label %q", classify.ErrUnavailable, parsed.Labels[0])
	}

	return classify.Classification{Label: label, Score: parsed.Scores[0]}, nil
}

var _ classify.Classifier = (*Client)(nil)
