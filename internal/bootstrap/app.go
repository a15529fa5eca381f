package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"cvision-backend/cv/export"
	"cvision-backend/internal/aiwriter"
	"cvision-backend/internal/experiences"
	"cvision-backend/internal/generatedcvs"
	"cvision-backend/internal/profiles"
	"cvision-backend/internal/shared/config"
	"cvision-backend/internal/shared/server"
	"cvision-backend/internal/shared/storage/artifact/local"
	s3store "cvision-backend/internal/shared/storage/artifact/s3"
	"cvision-backend/internal/shared/storage/db"
	"cvision-backend/internal/templates"
)

// App holds the wired dependencies for one process.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ArtifactStore export.Store

	ProfilesRepo     profiles.Repo
	ExperiencesRepo  experiences.Repo
	TemplatesRepo    templates.Repo
	GeneratedCVsRepo generatedcvs.Repo

	ProfilesService     *profiles.Service
	ExperiencesService  *experiences.Service
	GeneratedCVsService *generatedcvs.Service
	Writer              *aiwriter.Writer

	ProfilesHandler     *profiles.Handler
	ExperiencesHandler  *experiences.Handler
	TemplatesHandler    *templates.Handler
	GeneratedCVsHandler *generatedcvs.Handler
	AIHandler           *aiwriter.Handler
}

// Build prepares dependencies and the router. In dev-like environments a
// missing or unreachable database degrades to in-memory repositories so the
// API stays usable without infrastructure.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildArtifactStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		ArtifactStore: store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			app.ProfilesHandler,
			app.ExperiencesHandler,
			app.TemplatesHandler,
			app.GeneratedCVsHandler,
			app.AIHandler,
		},
		ServeLocalArtifacts: cfg.ArtifactStoreType != "s3",
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildArtifactStore(ctx context.Context, cfg config.Config) (export.Store, error) {
	switch cfg.ArtifactStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("ARTIFACT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return local.New(cfg.StorageRoot), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.ExperiencesRepo = &experiences.PGRepo{DB: app.DB}
		app.TemplatesRepo = &templates.PGRepo{DB: app.DB}
		app.GeneratedCVsRepo = &generatedcvs.PGRepo{DB: app.DB}
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.ExperiencesRepo = experiences.NewMemoryRepo()
		app.TemplatesRepo = templates.NewMemoryRepo()
		app.GeneratedCVsRepo = generatedcvs.NewMemoryRepo()
	}

	app.ExperiencesService = &experiences.Service{
		Repo:     app.ExperiencesRepo,
		Profiles: app.ProfilesRepo,
	}
	app.ProfilesService = &profiles.Service{
		Repo:        app.ProfilesRepo,
		Experiences: app.ExperiencesService,
	}
	app.GeneratedCVsService = &generatedcvs.Service{
		Repo:        app.GeneratedCVsRepo,
		Profiles:    app.ProfilesRepo,
		Experiences: app.ExperiencesRepo,
		Templates:   app.TemplatesRepo,
		Exporter:    &export.Exporter{Store: app.ArtifactStore},
	}
	app.Writer = aiwriter.NewWriter(aiwriter.Config{
		BaseURL: app.Config.OpenAIBaseURL,
		APIKey:  app.Config.OpenAIAPIKey,
		Model:   app.Config.OpenAIModel,
	})

	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.ExperiencesHandler = experiences.NewHandler(app.ExperiencesService)
	app.TemplatesHandler = templates.NewHandler(app.TemplatesRepo)
	app.GeneratedCVsHandler = generatedcvs.NewHandler(app.GeneratedCVsService)
	app.AIHandler = aiwriter.NewHandler(app.Writer, app.ProfilesRepo, app.ExperiencesRepo)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
