package resources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eduassist-backend/internal/classify"
	"eduassist-backend/internal/generate"
	"eduassist-backend/internal/render"
	"eduassist-backend/internal/shared/metrics"
	"eduassist-backend/internal/shared/storage/object"
	"eduassist-backend/internal/shared/telemetry"
	"eduassist-backend/internal/shared/util"
	"eduassist-backend/internal/translate"
)

const pdfContentType = "application/pdf"

// Service runs the classify, generate, translate, render pipeline and
// persists the result. The pipeline is strictly synchronous per request.
type Service struct {
	Classifier classify.Classifier
	Generator  generate.Generator
	Translator translate.Translator // optional; nil when no translation backend is configured
	Renderer   render.Renderer
	Store      object.ObjectStore
	Repo       Repo

	Provider      string
	Model         string
	PromptVersion string
}

// CreateInput carries the user request into the pipeline. FileName is
// optional; when empty the name is derived from the query.
type CreateInput struct {
	Query      string
	Subject    string
	TargetLang string
	FileName   string
}

// Create produces a rendered resource for the query.
func (s *Service) Create(ctx context.Context, in CreateInput) (Resource, error) {
	in.Query = strings.TrimSpace(in.Query)
	in.Subject = strings.TrimSpace(in.Subject)
	in.TargetLang = strings.ToLower(strings.TrimSpace(in.TargetLang))

	if in.Query == "" {
		return Resource{}, ErrEmptyQuery
	}
	if in.TargetLang != "" && !translate.Supported(in.TargetLang) {
		return Resource{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, in.TargetLang)
	}
	if in.FileName != "" {
		clean, err := util.SanitizeFileName(in.FileName)
		if err != nil {
			return Resource{}, fmt.Errorf("%w: %v", ErrInvalidFileName, err)
		}
		in.FileName = clean
	}
	if s.Classifier == nil || s.Generator == nil || s.Renderer == nil || s.Store == nil || s.Repo == nil {
		return Resource{}, errors.New("missing dependencies")
	}

	start := time.Now()
	metrics.IncPipelineStarted()

	resource, err := s.run(ctx, in)

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObservePipelineDurationMs(durationMs)
	if err != nil {
		metrics.IncPipelineFailed()
		telemetry.Error("pipeline.failed", map[string]any{
			"query":       in.Query,
			"target_lang": in.TargetLang,
			"duration_ms": durationMs,
			"error":       err.Error(),
		})
		return Resource{}, err
	}

	metrics.IncPipelineCompleted()
	telemetry.Info("pipeline.complete", map[string]any{
		"resource_id":  resource.ID,
		"format_label": string(resource.FormatLabel),
		"format_score": resource.FormatScore,
		"target_lang":  resource.TargetLang,
		"size_bytes":   resource.SizeBytes,
		"provider":     resource.Provider,
		"duration_ms":  durationMs,
	})
	return resource, nil
}

func (s *Service) run(ctx context.Context, in CreateInput) (Resource, error) {
	cls, err := s.Classifier.Classify(ctx, in.Query)
	if err != nil {
		return Resource{}, err
	}

	content, err := s.Generator.Generate(ctx, generate.Input{
		Query:         in.Query,
		Subject:       in.Subject,
		Format:        cls.Label,
		PromptVersion: s.PromptVersion,
	})
	if err != nil {
		return Resource{}, err
	}

	// The translator is invoked at most once, after generation, and only
	// for a non-English target.
	if in.TargetLang != "" && in.TargetLang != "en" {
		if s.Translator == nil {
			return Resource{}, fmt.Errorf("%w: no translation backend configured", translate.ErrUnavailable)
		}
		content, err = s.Translator.Translate(ctx, content, in.TargetLang)
		if err != nil {
			return Resource{}, err
		}
	}

	pdfBytes, err := s.Renderer.Render(in.Query, content)
	if err != nil {
		return Resource{}, err
	}

	id := uuid.NewString()
	fileName := in.FileName
	if fileName == "" {
		fileName = util.SlugFileName(in.Query) + ".pdf"
	} else if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		fileName += ".pdf"
	}
	storageKey := id + "/" + fileName

	size, err := s.Store.Save(ctx, storageKey, pdfContentType, bytes.NewReader(pdfBytes))
	if err != nil {
		return Resource{}, fmt.Errorf("store resource: %w", err)
	}

	resource := Resource{
		ID:            id,
		Query:         in.Query,
		Subject:       in.Subject,
		TargetLang:    in.TargetLang,
		FormatLabel:   cls.Label,
		FormatScore:   cls.Score,
		FileName:      fileName,
		StorageKey:    storageKey,
		SizeBytes:     size,
		Provider:      s.Provider,
		Model:         s.Model,
		PromptVersion: s.PromptVersion,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resource); err != nil {
		return Resource{}, fmt.Errorf("persist resource: %w", err)
	}
	return resource, nil
}

// Get returns a stored resource by ID.
func (s *Service) Get(ctx context.Context, id string) (Resource, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns stored resources newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Resource, error) {
	return s.Repo.List(ctx, limit, offset)
}
