package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service reports liveness and dependency status.
type Service struct {
	DB         *sql.DB
	StoreType  string
	Repository string
}

// NewService constructs a health service. db may be nil when running on in-memory repositories.
func NewService(db *sql.DB, storeType string) *Service {
	repo := "memory"
	if db != nil {
		repo = "postgres"
	}
	return &Service{DB: db, StoreType: storeType, Repository: repo}
}

// Status pings the database when one is configured.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{
		"ok":         true,
		"repository": s.Repository,
		"store":      s.StoreType,
	}
	if s.DB == nil {
		return out, true
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		out["ok"] = false
		out["database"] = err.Error()
		return out, false
	}
	out["database"] = "ok"
	return out, true
}
