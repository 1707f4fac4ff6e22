package faq

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListFAQ(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler().RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/faq", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var entries []Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected FAQ entries")
	}
	for _, entry := range entries {
		if entry.Question == "" || entry.Answer == "" {
			t.Fatalf("entry missing content: %+v", entry)
		}
	}
}

func TestAnswerLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler().RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/faq/answer?question=Which+output+formats+are+supported%3F", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["answer"] == "" {
		t.Fatalf("expected answer in response")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/faq/answer?question=unknown", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown question, got %d", rec.Code)
	}
}
