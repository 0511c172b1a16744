package resumes

import "context"

// Repo defines persistence operations for parsed resumes.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, userID, id string) (Resume, error)
	GetCurrentByUser(ctx context.Context, userID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	Delete(ctx context.Context, userID, id string) error
}
