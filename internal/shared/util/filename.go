package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxSlugLen = 60

// DefaultFileName is used when a slug cannot be derived from the query.
const DefaultFileName = "generated_resource"

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// leading instruction words dropped when deriving a file name from a query,
// so "Explain photosystem II" becomes photosystem_ii.
var leadingStopwords = map[string]struct{}{
	"explain": {}, "describe": {}, "define": {}, "show": {}, "give": {},
	"what": {}, "how": {}, "why": {}, "is": {}, "are": {}, "the": {},
	"a": {}, "an": {}, "i": {}, "me": {}, "need": {}, "want": {},
	"please": {}, "tell": {}, "about": {},
}

// SlugFileName derives a safe snake_case file stem from free-form query text.
func SlugFileName(query string) string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	start := 0
	for start < len(fields) {
		if _, ok := leadingStopwords[fields[start]]; !ok {
			break
		}
		start++
	}
	if start >= len(fields) {
		start = 0
	}

	slug := strings.Join(fields[start:], "_")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "_")
	}
	if slug == "" {
		return DefaultFileName
	}
	return slug
}
