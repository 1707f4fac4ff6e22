package translate

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the translation backend failed or returned a
// malformed response.
var ErrUnavailable = errors.New("translation unavailable")

// SupportedLanguages are the target language codes accepted at the API boundary.
var SupportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"bn": "Bengali",
	"fr": "French",
}

// Supported reports whether code is an accepted target language.
func Supported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// Translator is a pure, stateless text transform into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
