package model

import "time"

// Status is the screening decision for a candidate.
type Status string

const (
	// StatusPending means the candidate was ingested without a job description
	// and has not been classified yet.
	StatusPending Status = "pending"
	// StatusMatched means the candidate's similarity score reached the threshold.
	StatusMatched Status = "matched"
	// StatusRejected means the candidate's similarity score fell below the threshold.
	StatusRejected Status = "rejected"
)

// NoEmailFound is stored when no contact address could be extracted from a resume.
// Extraction is best-effort and never blocks processing.
const NoEmailFound = "No email found"

// PreviewLength bounds the stored raw-text preview. The preview is for display
// only and is never fed back into scoring.
const PreviewLength = 500

// Candidate is a processed resume. Records are owned by the candidate store:
// ID and UploadedAt are immutable after creation, Score and Status are only
// rewritten through the store's UpdateClassification.
type Candidate struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	Filename    string    `json:"filename"`       // sanitized original upload name
	StoredName  string    `json:"storedFilename"` // unique name under the upload directory
	Score       float64   `json:"score"`
	Status      Status    `json:"status"`
	UploadedAt  time.Time `json:"uploadDate"`
	TextPreview string    `json:"resumeText"`
}

// HasEmail reports whether a real contact address was extracted.
func (c Candidate) HasEmail() bool {
	return c.Email != "" && c.Email != NoEmailFound
}
