package classify

import (
	"context"
	"errors"
)

// FormatLabel is the inferred output format for a query.
type FormatLabel string

const (
	FormatDocument    FormatLabel = "document"
	FormatQuiz        FormatLabel = "quiz"
	FormatAudioLesson FormatLabel = "audio-lesson"
)

// ScoreThreshold is the minimum confidence for a label to be considered unambiguous.
const ScoreThreshold = 0.5

// CandidateLabels are the human-readable labels sent to the zero-shot backend,
// in a fixed order matched by LabelFor.
var CandidateLabels = []string{"document", "quiz", "audio lesson"}

// ErrUnavailable indicates the classification backend was unreachable or
// returned a malformed response.
var ErrUnavailable = errors.New("classification unavailable")

// Classification is the best-matching label with its confidence score.
type Classification struct {
	Label FormatLabel
	Score float64
}

// Classifier maps a free-text query to one of the fixed format labels.
type Classifier interface {
	Classify(ctx context.Context, query string) (Classification, error)
}

// LabelFor maps a backend candidate label to the FormatLabel enum.
func LabelFor(candidate string) (FormatLabel, bool) {
	switch candidate {
	case "document":
		return FormatDocument, true
	case "quiz":
		return FormatQuiz, true
	case "audio lesson":
		return FormatAudioLesson, true
	default:
		return "", false
	}
}

// Valid reports whether label is one of the known format labels.
func (l FormatLabel) Valid() bool {
	switch l {
	case FormatDocument, FormatQuiz, FormatAudioLesson:
		return true
	default:
		return false
	}
}
