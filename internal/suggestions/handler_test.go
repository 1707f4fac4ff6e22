package suggestions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(&Service{Repo: NewMemoryRepo()})
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSuggestion(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(router, "/api/v1/suggestions",
		`{"subject":"Physics","grade":"10","resourceType":"quiz","description":"Projectile motion practice set"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SuggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || resp.Subject != "Physics" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateSuggestionValidation(t *testing.T) {
	router := newTestRouter()

	for _, body := range []string{
		`{"subject":"","description":"no subject"}`,
		`{"subject":"Math","description":"  "}`,
	} {
		rec := postJSON(router, "/api/v1/suggestions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestListSuggestionsNewestFirst(t *testing.T) {
	router := newTestRouter()

	for _, desc := range []string{"first", "second"} {
		rec := postJSON(router, "/api/v1/suggestions", `{"subject":"Math","description":"`+desc+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed suggestion: %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []SuggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(resp))
	}
	if resp[0].Description != "second" {
		t.Fatalf("expected newest-first order, got %q first", resp[0].Description)
	}
}
