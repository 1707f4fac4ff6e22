package resources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"eduassist-backend/internal/classify"
	"eduassist-backend/internal/generate"
	"eduassist-backend/internal/translate"
)

type classifierFunc func(context.Context, string) (classify.Classification, error)

func (f classifierFunc) Classify(ctx context.Context, query string) (classify.Classification, error) {
	return f(ctx, query)
}

type generatorFunc func(context.Context, generate.Input) (string, error)

func (f generatorFunc) Generate(ctx context.Context, in generate.Input) (string, error) {
	return f(ctx, in)
}

type translatorFunc func(context.Context, string, string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return f(ctx, text, targetLang)
}

type rendererFunc func(string, string) ([]byte, error)

func (f rendererFunc) Render(title, content string) ([]byte, error) {
	return f(title, content)
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	onSave  func(key string)
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, storageKey, _ string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.objects[storageKey] = data
	s.mu.Unlock()
	if s.onSave != nil {
		s.onSave(storageKey)
	}
	return int64(len(data)), nil
}

func (s *memStore) Open(_ context.Context, storageKey string) (io.ReadCloser, error) {
	s.mu.Lock()
	data, ok := s.objects[storageKey]
	s.mu.Unlock()
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// newTestService wires happy-path fakes. Individual tests override fields.
func newTestService(steps *[]string) (*Service, *memStore) {
	record := func(step string) {
		if steps != nil {
			*steps = append(*steps, step)
		}
	}

	store := newMemStore()
	store.onSave = func(string) { record("save") }

	svc := &Service{
		Classifier: classifierFunc(func(_ context.Context, _ string) (classify.Classification, error) {
			record("classify")
			return classify.Classification{Label: classify.FormatDocument, Score: 0.92}, nil
		}),
		Generator: generatorFunc(func(_ context.Context, _ generate.Input) (string, error) {
			record("generate")
			return "## Introduction\n\nPhotosystem II splits water.", nil
		}),
		Translator: translatorFunc(func(_ context.Context, text, targetLang string) (string, error) {
			record("translate")
			return "[" + targetLang + "] " + text, nil
		}),
		Renderer: rendererFunc(func(_, content string) ([]byte, error) {
			record("render")
			return []byte("%PDF " + content), nil
		}),
		Store:         store,
		Repo:          NewMemoryRepo(),
		Provider:      "cohere",
		Model:         "command-r-plus",
		PromptVersion: "v1",
	}
	return svc, store
}

func TestCreatePipelineSuccess(t *testing.T) {
	var steps []string
	svc, store := newTestService(&steps)

	resource, err := svc.Create(context.Background(), CreateInput{
		Query:   "Explain photosystem II",
		Subject: "Biology",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resource.FileName != "photosystem_ii.pdf" {
		t.Fatalf("unexpected file name %q", resource.FileName)
	}
	if resource.FormatLabel != classify.FormatDocument {
		t.Fatalf("unexpected format label %q", resource.FormatLabel)
	}
	if resource.FormatScore != 0.92 {
		t.Fatalf("unexpected format score %v", resource.FormatScore)
	}
	if resource.SizeBytes <= 0 {
		t.Fatalf("expected positive size, got %d", resource.SizeBytes)
	}
	if resource.Provider != "cohere" || resource.Model != "command-r-plus" || resource.PromptVersion != "v1" {
		t.Fatalf("pipeline metadata not recorded: %+v", resource)
	}

	got := strings.Join(steps, ",")
	if got != "classify,generate,render,save" {
		t.Fatalf("unexpected pipeline order: %s", got)
	}

	stored, err := svc.Get(context.Background(), resource.ID)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if stored.StorageKey != resource.StorageKey {
		t.Fatalf("stored resource mismatch: %+v", stored)
	}
	if _, ok := store.objects[resource.StorageKey]; !ok {
		t.Fatalf("object not saved under %q", resource.StorageKey)
	}
}

func TestCreateWithExplicitFileName(t *testing.T) {
	svc, _ := newTestService(nil)

	resource, err := svc.Create(context.Background(), CreateInput{
		Query:    "Explain photosystem II",
		FileName: "light_reactions",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resource.FileName != "light_reactions.pdf" {
		t.Fatalf("unexpected file name %q", resource.FileName)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		Query:    "Explain photosystem II",
		FileName: "../escape.pdf",
	})
	if !errors.Is(err, ErrInvalidFileName) {
		t.Fatalf("expected ErrInvalidFileName, got %v", err)
	}
}

func TestCreateEmptyQueryAbortsBeforePipeline(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)

	_, err := svc.Create(context.Background(), CreateInput{Query: "   "})
	if !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no pipeline steps, got %v", steps)
	}
}

func TestCreateTranslatesExactlyOnce(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)

	var rendered string
	svc.Renderer = rendererFunc(func(_, content string) ([]byte, error) {
		steps = append(steps, "render")
		rendered = content
		return []byte("%PDF " + content), nil
	})

	resource, err := svc.Create(context.Background(), CreateInput{
		Query:      "Explain photosystem II",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got := strings.Join(steps, ",")
	if got != "classify,generate,translate,render,save" {
		t.Fatalf("unexpected pipeline order: %s", got)
	}
	if !strings.HasPrefix(rendered, "[fr] ") {
		t.Fatalf("renderer did not receive translated content: %q", rendered)
	}
	if resource.TargetLang != "fr" {
		t.Fatalf("target lang not recorded: %q", resource.TargetLang)
	}
}

func TestCreateEnglishSkipsTranslation(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)

	if _, err := svc.Create(context.Background(), CreateInput{Query: "Explain fractions", TargetLang: "en"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, step := range steps {
		if step == "translate" {
			t.Fatalf("translator invoked for english target: %v", steps)
		}
	}
}

func TestCreateUnsupportedLanguage(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)

	_, err := svc.Create(context.Background(), CreateInput{Query: "Explain fractions", TargetLang: "xx"})
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no pipeline steps, got %v", steps)
	}
}

func TestCreateClassifierFailureStopsPipeline(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)
	svc.Classifier = classifierFunc(func(_ context.Context, _ string) (classify.Classification, error) {
		return classify.Classification{}, fmt.Errorf("%w: status 503", classify.ErrUnavailable)
	})

	_, err := svc.Create(context.Background(), CreateInput{Query: "Explain fractions"})
	if !errors.Is(err, classify.ErrUnavailable) {
		t.Fatalf("expected classify.ErrUnavailable, got %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps after classifier failure, got %v", steps)
	}
}

func TestCreateGeneratorFailureStopsPipeline(t *testing.T) {
	var steps []string
	svc, _ := newTestService(&steps)
	svc.Generator = generatorFunc(func(_ context.Context, _ generate.Input) (string, error) {
		return "", fmt.Errorf("%w: model overloaded", generate.ErrUnavailable)
	})

	_, err := svc.Create(context.Background(), CreateInput{Query: "Explain fractions"})
	if !errors.Is(err, generate.ErrUnavailable) {
		t.Fatalf("expected generate.ErrUnavailable, got %v", err)
	}
	got := strings.Join(steps, ",")
	if got != "classify" {
		t.Fatalf("expected only classify step, got %s", got)
	}
}

func TestCreateWithoutTranslatorConfigured(t *testing.T) {
	svc, _ := newTestService(nil)
	svc.Translator = nil

	_, err := svc.Create(context.Background(), CreateInput{Query: "Explain fractions", TargetLang: "hi"})
	if !errors.Is(err, translate.ErrUnavailable) {
		t.Fatalf("expected translate.ErrUnavailable, got %v", err)
	}
}
