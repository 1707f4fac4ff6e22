package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"eduassist-backend/internal/classify/huggingface"
	"eduassist-backend/internal/faq"
	"eduassist-backend/internal/generate"
	"eduassist-backend/internal/generate/cohere"
	"eduassist-backend/internal/generate/openai"
	"eduassist-backend/internal/render"
	"eduassist-backend/internal/resources"
	"eduassist-backend/internal/shared/config"
	"eduassist-backend/internal/shared/server"
	"eduassist-backend/internal/shared/storage/db"
	"eduassist-backend/internal/shared/storage/object"
	localstore "eduassist-backend/internal/shared/storage/object/local"
	s3store "eduassist-backend/internal/shared/storage/object/s3"
	"eduassist-backend/internal/suggestions"
	"eduassist-backend/internal/translate"
	"eduassist-backend/internal/translate/googletrans"
)

// App holds the constructed application graph.
type App struct {
	Cfg    config.Config
	DB     *sql.DB
	Router *gin.Engine
}

// Build constructs every dependency explicitly and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB := connectDatabase(ctx, cfg)

	classifier, err := huggingface.NewClient(cfg.HFAPIKey, cfg.HFModel)
	if err != nil {
		return nil, fmt.Errorf("init classifier: %w", err)
	}

	generator, err := buildGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("init generator: %w", err)
	}

	var translator translate.Translator
	if cfg.TranslateAPIKey != "" {
		translator, err = googletrans.NewClient(cfg.TranslateAPIKey)
		if err != nil {
			return nil, fmt.Errorf("init translator: %w", err)
		}
	} else {
		log.Printf("TRANSLATE_API_KEY not set, translation disabled")
	}

	var resourceRepo resources.Repo
	var suggestionRepo suggestions.Repo
	if sqlDB != nil {
		resourceRepo = &resources.PGRepo{DB: sqlDB}
		suggestionRepo = &suggestions.PGRepo{DB: sqlDB}
	} else {
		resourceRepo = resources.NewMemoryRepo()
		suggestionRepo = suggestions.NewMemoryRepo()
	}

	resourceSvc := &resources.Service{
		Classifier:    classifier,
		Generator:     generator,
		Translator:    translator,
		Renderer:      render.NewPDFRenderer(),
		Store:         store,
		Repo:          resourceRepo,
		Provider:      cfg.GenProvider,
		Model:         cfg.GenModel,
		PromptVersion: cfg.PromptVersion,
	}
	suggestionSvc := &suggestions.Service{Repo: suggestionRepo}

	router := server.NewRouter(server.RouterDeps{
		Env:             cfg.Env,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		Resources:       resources.NewHandler(resourceSvc, store),
		Suggestions:     suggestions.NewHandler(suggestionSvc),
		FAQ:             faq.NewHandler(),
	})

	return &App{Cfg: cfg, DB: sqlDB, Router: router}, nil
}

// Close releases long-lived resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// connectDatabase opens Postgres when DATABASE_URL is set, falling back to
// in-memory repos on failure so dev environments work without a database.
func connectDatabase(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildGenerator(cfg config.Config) (generate.Generator, error) {
	switch cfg.GenProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.GenModel)
	default:
		return cohere.NewClient(cfg.CohereAPIKey, cfg.GenModel)
	}
}
