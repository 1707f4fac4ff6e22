package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"eduassist-backend/internal/generate"
)

const apiURL = "https://api.cohere.com/v2/chat"

// Client implements generate.Generator using the Cohere chat API.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new Cohere client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("COHERE_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEN_MODEL is required for Cohere")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("COHERE_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type assistantMessage struct {
	Content []contentPart `json:"content"`
}

type chatUsage struct {
	Tokens struct {
		InputTokens  float64 `json:"input_tokens"`
		OutputTokens float64 `json:"output_tokens"`
	} `json:"tokens"`
}

type chatResponse struct {
	ID      string            `json:"id"`
	Message *assistantMessage `json:"message,omitempty"`
	Usage   *chatUsage        `json:"usage,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Generate builds the fixed educational prompt and submits a single chat
// request. Backend errors, malformed responses, and empty content all map to
// generate.ErrUnavailable.
func (c *Client) Generate(ctx context.Context, input generate.Input) (string, error) {
	messages := generate.BuildPrompt(input)
	reqMessages := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, chatMessage{Role: m.Role, Content: m.Content})
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    reqMessages,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("%w: request timeout: %v", generate.ErrUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", generate.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", generate.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", generate.ErrUnavailable, resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%w: status %d", generate.ErrUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: response parse: %v", generate.ErrUnavailable, err)
	}
	if parsed.Message == nil || len(parsed.Message.Content) == 0 {
		return "", fmt.Errorf("%w: response missing content", generate.ErrUnavailable)
	}

	var b strings.Builder
	for _, part := range parsed.Message.Content {
		if part.Type == "text" {
			b.WriteString(part.Text)
		}
	}
	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("%w: response empty content", generate.ErrUnavailable)
	}

	if parsed.Usage != nil {
		log.Printf("cohere response model=%s input_tokens=%.0f output_tokens=%.0f",
			c.model, parsed.Usage.Tokens.InputTokens, parsed.Usage.Tokens.OutputTokens)
	}
	return content, nil
}

var _ generate.Generator = (*Client)(nil)
