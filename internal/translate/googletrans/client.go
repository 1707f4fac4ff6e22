package googletrans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"eduassist-backend/internal/translate"
)

const apiURL = "https://translation.googleapis.com/language/translate/v2"

// Client implements translate.Translator using the Google Translate v2 API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new Google Translate client.
func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("TRANSLATE_API_KEY is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("TRANSLATE_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type translateResponse struct {
	Data *struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data,omitempty"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate converts text into the target language. The backend returns
// HTML-entity encoded text, which is decoded before returning.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("target", targetLang)
	form.Set("format", "text")
	form.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("%w: request timeout: %v", translate.ErrUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", translate.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", translate.ErrUnavailable, err)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: response parse: %v", translate.ErrUnavailable, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s (code %d)", translate.ErrUnavailable, parsed.Error.Message, parsed.Error.Code)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", translate.ErrUnavailable, resp.StatusCode)
	}
	if parsed.Data == nil || len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("%w: response missing translations", translate.ErrUnavailable)
	}

	translated := strings.TrimSpace(html.UnescapeString(parsed.Data.Translations[0].TranslatedText))
	if translated == "" {
		return "", fmt.Errorf("%w: response empty translation", translate.ErrUnavailable)
	}
	return translated, nil
}

var _ translate.Translator = (*Client)(nil)
