package openai

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"eduassist-backend/internal/generate"
)

// Client implements generate.Generator using the official openai-go SDK
// (chat completions).
type Client struct {
	model string
	opts  []option.RequestOption
}

// NewClient constructs a new OpenAI generation client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEN_MODEL is required for OpenAI")
	}
	return &Client{
		model: model,
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}, nil
}

// Generate builds the fixed educational prompt and submits a single chat
// completion request.
func (c *Client) Generate(ctx context.Context, input generate.Input) (string, error) {
	client := openaisdk.NewClient(c.opts...)

	var msgs []openaisdk.ChatCompletionMessageParamUnion
	for _, m := range generate.BuildPrompt(input) {
		switch m.Role {
		case "system":
			msgs = append(msgs, openaisdk.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openaisdk.UserMessage(m.Content))
		}
	}

	resp, err := client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(c.model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generate.ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", generate.ErrUnavailable)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: response empty content", generate.ErrUnavailable)
	}
	return content, nil
}

var _ generate.Generator = (*Client)(nil)
