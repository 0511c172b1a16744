package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/extract"
	"staffing-backend/internal/resumes"
	"staffing-backend/internal/services/health"
	"staffing-backend/internal/shared/auth"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/server"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/storage/db"
	"staffing-backend/internal/shared/storage/object"
	localstore "staffing-backend/internal/shared/storage/object/local"
	s3store "staffing-backend/internal/shared/storage/object/s3"
	"staffing-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	ResumesRepo   resumes.Repo
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// Build wires storage, services and routes from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	keys, err := auth.NewKeys(cfg.JWTSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
	}
	app.ResumeService = &resumes.Service{
		Store:           app.Store,
		Repo:            app.ResumesRepo,
		Extractor:       extract.New(),
		StorageProvider: cfg.ObjectStoreType,
	}
	app.ResumeHandler = resumes.NewHandler(app.ResumeService)
	app.Health = health.NewService(app.DB, cfg.ObjectStoreType)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		Health:        app.Health,
		Limiter:       middleware.NewRateLimiter(nil),
		Keys:          keys,
	})

	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if isDevLike(cfg.Env) {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, s3store.Options{
			Region:   cfg.AWSRegion,
			Bucket:   cfg.S3Bucket,
			Prefix:   cfg.S3Prefix,
			KMSKeyID: cfg.SSEKMSKeyID,
			Endpoint: cfg.S3Endpoint,
		})
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
