package googletrans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduassist-backend/internal/translate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:     "test-key",
		apiURL:     srv.URL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestTranslateReturnsText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("target"); got != "fr" {
			t.Fatalf("expected target fr, got %q", got)
		}
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Bonjour le monde"}]}}`))
	})

	got, err := client.Translate(context.Background(), "Hello world", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Bonjour le monde" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestTranslateDecodesEntities(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"l&#39;eau"}]}}`))
	})

	got, err := client.Translate(context.Background(), "the water", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "l'eau" {
		t.Fatalf("expected entities decoded, got %q", got)
	}
}

func TestTranslateBackendErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "invalid key"},
		})
	})

	_, err := client.Translate(context.Background(), "Hello", "fr")
	if !errors.Is(err, translate.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTranslateMalformedResponseIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.Translate(context.Background(), "Hello", "fr")
	if !errors.Is(err, translate.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSupportedLanguages(t *testing.T) {
	for _, code := range []string{"en", "hi", "ta", "bn", "fr"} {
		if !translate.Supported(code) {
			t.Fatalf("expected %q to be supported", code)
		}
	}
	if translate.Supported("xx") {
		t.Fatalf("expected xx to be unsupported")
	}
}
