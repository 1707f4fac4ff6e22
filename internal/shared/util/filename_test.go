package util

import "testing"

func TestSlugFileName(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"drops leading instruction word", "Explain photosystem II", "photosystem_ii"},
		{"drops leading phrase", "I need practice problems on fractions", "practice_problems_on_fractions"},
		{"punctuation becomes separators", "What is Newton's 2nd law?", "newton_s_2nd_law"},
		{"empty query falls back", "", DefaultFileName},
		{"all stopwords keeps everything", "explain me", "explain_me"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SlugFileName(tc.query)
			if got != tc.want {
				t.Fatalf("SlugFileName(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	if _, err := SanitizeFileName("../secret.pdf"); err == nil {
		t.Fatalf("expected error for traversal name")
	}
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatalf("expected error for blank name")
	}
	got, err := SanitizeFileName("a/b.pdf")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "a_b.pdf" {
		t.Fatalf("expected separators replaced, got %q", got)
	}
}
