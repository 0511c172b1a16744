package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"staffing-backend/resume/parse"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, user_id, file_name, mime_type, size_bytes, storage_provider, storage_key, extracted_text_key, parsed, created_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_provider,
    storage_key,
    extracted_text_key,
    parsed,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	parsed, err := json.Marshal(res.Parsed.Normalize())
	if err != nil {
		return fmt.Errorf("marshal parsed resume: %w", err)
	}

	storageProvider := res.StorageProvider
	if storageProvider == "" {
		storageProvider = "local"
	}

	var extractedKey sql.NullString
	if res.ExtractedTextKey != "" {
		extractedKey = sql.NullString{String: res.ExtractedTextKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		storageProvider,
		res.StorageKey,
		extractedKey,
		parsed,
		res.CreatedAt,
	)
	return err
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	return scanOne(r.DB.QueryRowContext(ctx, query, userID, id))
}

// GetCurrentByUser returns the latest resume for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	return scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes a resume owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `
UPDATE resumes
SET deleted_at = NOW()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	result, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOne(row *sql.Row) (Resume, error) {
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var storageProvider sql.NullString
	var extractedKey sql.NullString
	var parsed []byte
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.FileName,
		&res.MimeType,
		&res.SizeBytes,
		&storageProvider,
		&res.StorageKey,
		&extractedKey,
		&parsed,
		&res.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if storageProvider.Valid {
		res.StorageProvider = storageProvider.String
	}
	if extractedKey.Valid {
		res.ExtractedTextKey = extractedKey.String
	}
	res.Parsed = parse.NewParsedResume()
	if len(parsed) > 0 {
		var decoded parse.ParsedResume
		if err := json.Unmarshal(parsed, &decoded); err != nil {
			return Resume{}, fmt.Errorf("decode parsed resume %s: %w", res.ID, err)
		}
		res.Parsed = decoded.Normalize()
	}
	return res, nil
}

var _ Repo = (*PGRepo)(nil)
