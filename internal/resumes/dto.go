package resumes

import (
	"time"

	"staffing-backend/resume/parse"
)

// ResumeResponse is the outward-facing representation of a stored resume.
type ResumeResponse struct {
	ResumeID   string             `json:"resumeId"`
	FileName   string             `json:"fileName"`
	MimeType   string             `json:"mimeType"`
	SizeBytes  int64              `json:"sizeBytes"`
	UploadedAt time.Time          `json:"uploadedAt"`
	Parsed     parse.ParsedResume `json:"parsed"`
}

// ResumeSummary is the list item shape; parsed fields are fetched per resume.
type ResumeSummary struct {
	ResumeID   string    `json:"resumeId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
	Empty      bool      `json:"empty"`
}

func toResponse(res Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:   res.ID,
		FileName:   res.FileName,
		MimeType:   res.MimeType,
		SizeBytes:  res.SizeBytes,
		UploadedAt: res.CreatedAt,
		Parsed:     res.Parsed.Normalize(),
	}
}

func toSummary(res Resume) ResumeSummary {
	return ResumeSummary{
		ResumeID:   res.ID,
		FileName:   res.FileName,
		MimeType:   res.MimeType,
		SizeBytes:  res.SizeBytes,
		UploadedAt: res.CreatedAt,
		Empty:      res.Parsed.IsEmpty(),
	}
}
