package resources

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrEmptyQuery          = errors.New("query is empty")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrInvalidFileName     = errors.New("invalid file name")
)
