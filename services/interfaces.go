package services

import (
	"context"
	"io"

	"github.com/zhassan-dev/resume-screener/model"
)

// Upload is a single incoming resume file: the client-supplied name plus its content.
type Upload struct {
	Filename string
	Content  io.Reader
}

// BatchResult aggregates a batch ingestion pass. Per-file failures are isolated:
// Candidates holds the successfully processed records in input order, Skipped
// counts the files that were rejected or unreadable.
type BatchResult struct {
	Processed  int               `json:"processed"`
	Skipped    int               `json:"skipped"`
	Candidates []model.Candidate `json:"candidates"`
}

// NotifyFilter selects which candidates receive a notification pass.
type NotifyFilter string

const (
	NotifyAll      NotifyFilter = "all"
	NotifyMatched  NotifyFilter = "matched"
	NotifyRejected NotifyFilter = "rejected"
)

// NotifyResult reports a notification pass. Sent counts successful sends only;
// per-recipient failures are logged and counted in Failed, never propagated.
type NotifyResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// TextExtractor recovers raw text from stored resume files. Implementations
// log unreadable pages out-of-band and only return an error when a file cannot
// be opened or parsed at all.
type TextExtractor interface {
	ExtractPDF(path string) (string, error)
	ExtractDOCX(path string) (string, error)
}

// Embedder maps text to a fixed-dimension dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Notifier delivers a notification to a single recipient.
type Notifier interface {
	Send(to, subject, body string) error
}

// Screener is the resume-to-job matching pipeline consumed by the HTTP layer.
type Screener interface {
	// Ingest processes one upload. With a non-empty job description the
	// candidate is classified immediately; otherwise it stays pending.
	Ingest(ctx context.Context, upload Upload, jobDescription string) (model.Candidate, error)

	// IngestBatch applies Ingest to each upload independently. A single file's
	// failure is logged and skipped and never aborts the batch.
	IngestBatch(ctx context.Context, uploads []Upload, jobDescription string) BatchResult

	// Reclassify re-scores every stored candidate whose backing file still
	// exists against a new job description and threshold. Records with a
	// missing backing file are left untouched.
	Reclassify(ctx context.Context, jobDescription string, minScore float64) ([]model.Candidate, error)

	// SetThreshold updates the default threshold used by future Ingest calls.
	// It never reclassifies existing records.
	SetThreshold(value float64) error

	// Threshold returns the currently configured default threshold.
	Threshold() float64

	// Notify sends decision emails to candidates selected by the filter.
	Notify(ctx context.Context, filter NotifyFilter) (NotifyResult, error)

	// Candidates returns all stored records in insertion order.
	Candidates() []model.Candidate

	// Remove deletes a candidate by id. Removing an absent id is a no-op.
	Remove(id int)
}
