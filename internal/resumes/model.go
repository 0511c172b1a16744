package resumes

import (
	"time"

	"staffing-backend/resume/parse"
)

// Resume is an uploaded resume together with the fields parsed from it.
type Resume struct {
	ID               string
	UserID           string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	Parsed           parse.ParsedResume
	CreatedAt        time.Time
}
