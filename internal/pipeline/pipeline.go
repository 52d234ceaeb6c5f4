// Package pipeline implements the resume-to-job matching pipeline:
// ingestion, normalization, similarity scoring, threshold classification,
// re-scoring, and the notification pass.
package pipeline

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhassan-dev/resume-screener/internal/errors"
	"github.com/zhassan-dev/resume-screener/internal/normalizer"
	"github.com/zhassan-dev/resume-screener/internal/notify"
	"github.com/zhassan-dev/resume-screener/internal/scorer"
	"github.com/zhassan-dev/resume-screener/internal/storage"
	"github.com/zhassan-dev/resume-screener/model"
	"github.com/zhassan-dev/resume-screener/services"
	"github.com/zhassan-dev/resume-screener/store"
)

// batchConcurrency bounds parallel extraction/scoring during batch ingestion.
// Store writes happen afterwards, serialized and in input order.
const batchConcurrency = 4

// emailRegex is the fixed best-effort contact pattern applied to raw
// (non-normalized) resume text.
var emailRegex = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// Deps are the collaborators a Pipeline orchestrates. All of them are
// constructed once at process start and shared across requests.
type Deps struct {
	Store     *store.CandidateStore
	Uploads   *storage.Uploads
	Extractor services.TextExtractor
	Scorer    *scorer.Scorer
	Notifier  services.Notifier
	Logger    *zap.Logger
}

// Pipeline routes each uploaded resume to an accept/reject decision.
// It implements services.Screener.
type Pipeline struct {
	store     *store.CandidateStore
	uploads   *storage.Uploads
	extractor services.TextExtractor
	scorer    *scorer.Scorer
	notifier  services.Notifier
	log       *zap.Logger

	mu        sync.RWMutex
	threshold float64
}

var _ services.Screener = (*Pipeline)(nil)

// New creates a Pipeline with the given default threshold.
func New(deps Deps, threshold float64) (*Pipeline, error) {
	if threshold < 0 || threshold > 1 {
		return nil, errors.NewValidationError("threshold", "must be between 0 and 1")
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		store:     deps.Store,
		uploads:   deps.Uploads,
		extractor: deps.Extractor,
		scorer:    deps.Scorer,
		notifier:  deps.Notifier,
		log:       log,
		threshold: threshold,
	}, nil
}

// Threshold returns the current default threshold.
func (p *Pipeline) Threshold() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.threshold
}

// SetThreshold updates the default threshold used by future Ingest calls.
// Existing records keep their classification until an explicit Reclassify.
func (p *Pipeline) SetThreshold(value float64) error {
	if value < 0 || value > 1 {
		return errors.NewValidationError("threshold", "must be between 0 and 1")
	}
	p.mu.Lock()
	p.threshold = value
	p.mu.Unlock()
	p.log.Info("threshold updated", zap.Float64("threshold", value))
	return nil
}

// Ingest processes one upload end to end: format check, blob storage, text
// extraction, email capture, and immediate classification when a job
// description is present. The record is persisted regardless of the
// classification outcome.
func (p *Pipeline) Ingest(ctx context.Context, upload services.Upload, jobDescription string) (model.Candidate, error) {
	candidate, err := p.prepare(ctx, upload, jobDescription)
	if err != nil {
		return model.Candidate{}, err
	}
	return p.store.Add(candidate), nil
}

// IngestBatch applies Ingest to each upload independently. Extraction and
// scoring run concurrently; failed files are logged and skipped, and the
// surviving records are stored in input order.
func (p *Pipeline) IngestBatch(ctx context.Context, uploads []services.Upload, jobDescription string) services.BatchResult {
	type item struct {
		candidate model.Candidate
		err       error
	}
	items := make([]item, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, upload := range uploads {
		i, upload := i, upload
		g.Go(func() error {
			items[i].candidate, items[i].err = p.prepare(gctx, upload, jobDescription)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures stay per-item

	result := services.BatchResult{Candidates: make([]model.Candidate, 0, len(uploads))}
	for i, it := range items {
		if it.err != nil {
			p.log.Warn("skipping file in batch",
				zap.String("filename", uploads[i].Filename), zap.Error(it.err))
			result.Skipped++
			continue
		}
		result.Candidates = append(result.Candidates, p.store.Add(it.candidate))
		result.Processed++
	}
	return result
}

// prepare does every per-file step except the store write.
func (p *Pipeline) prepare(ctx context.Context, upload services.Upload, jobDescription string) (model.Candidate, error) {
	if !supportedFormat(upload.Filename) {
		return model.Candidate{}, errors.NewUnsupportedFormatError(upload.Filename)
	}

	storedName, err := p.uploads.Save(upload.Filename, upload.Content)
	if err != nil {
		return model.Candidate{}, err
	}

	rawText, err := p.extractText(upload.Filename, p.uploads.Path(storedName))
	if err != nil {
		return model.Candidate{}, err
	}

	candidate := model.Candidate{
		Email:       extractEmail(rawText),
		Filename:    storage.SanitizeFilename(upload.Filename),
		StoredName:  storedName,
		Status:      model.StatusPending,
		UploadedAt:  time.Now(),
		TextPreview: preview(rawText),
	}

	if jobDescription != "" {
		score, err := p.scoreTexts(ctx, jobDescription, rawText)
		if err != nil {
			return model.Candidate{}, err
		}
		candidate.Score = score
		candidate.Status = p.classify(score, p.Threshold())
	}
	return candidate, nil
}

// Reclassify re-scores every stored candidate whose backing file still exists
// against a new job description, overwriting score and status with minScore as
// the threshold. Records with a missing or unreadable backing file are left
// untouched. This is the only operation that can flip a decided candidate.
func (p *Pipeline) Reclassify(ctx context.Context, jobDescription string, minScore float64) ([]model.Candidate, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.ErrMissingJobDescription
	}
	if minScore < 0 || minScore > 1 {
		return nil, errors.NewValidationError("minScore", "must be between 0 and 1")
	}

	normalizedJob := normalizer.Normalize(jobDescription)

	for _, candidate := range p.store.All() {
		if !p.uploads.Exists(candidate.StoredName) {
			p.log.Debug("backing file missing, leaving record untouched",
				zap.Int("id", candidate.ID), zap.String("filename", candidate.Filename))
			continue
		}

		rawText, err := p.extractText(candidate.Filename, p.uploads.Path(candidate.StoredName))
		if err != nil {
			p.log.Warn("re-extraction failed, leaving record untouched",
				zap.Int("id", candidate.ID), zap.Error(err))
			continue
		}

		score, err := p.scorer.Score(ctx, normalizedJob, normalizer.Normalize(rawText))
		if err != nil {
			// Scoring errors mean the embedding capability is down, not a bad
			// record; abort the pass instead of silently skipping everything.
			return nil, err
		}

		if err := p.store.UpdateClassification(candidate.ID, score, p.classify(score, minScore)); err != nil {
			p.log.Warn("record vanished during reclassification", zap.Int("id", candidate.ID))
		}
	}
	return p.store.All(), nil
}

// Notify sends decision emails to candidates selected by the filter.
// Pending candidates and candidates without an extracted address are skipped.
// Per-recipient failures are logged and counted, never propagated.
func (p *Pipeline) Notify(_ context.Context, filter services.NotifyFilter) (services.NotifyResult, error) {
	switch filter {
	case services.NotifyAll, services.NotifyMatched, services.NotifyRejected:
	default:
		return services.NotifyResult{}, errors.NewValidationError("sendTo", "must be one of all, matched, rejected")
	}

	var result services.NotifyResult
	for _, candidate := range p.store.All() {
		if candidate.Status == model.StatusPending || !candidate.HasEmail() {
			continue
		}
		if filter != services.NotifyAll && string(filter) != string(candidate.Status) {
			continue
		}

		subject, body := notify.MatchedSubject, notify.MatchedBody
		if candidate.Status == model.StatusRejected {
			subject, body = notify.RejectedSubject, notify.RejectedBody
		}

		if err := p.notifier.Send(candidate.Email, subject, body); err != nil {
			p.log.Warn("notification failed",
				zap.Int("id", candidate.ID), zap.String("email", candidate.Email), zap.Error(err))
			result.Failed++
			continue
		}
		result.Sent++
	}

	p.log.Info("notification pass finished",
		zap.String("filter", string(filter)), zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
	return result, nil
}

// Candidates returns all stored records in insertion order.
func (p *Pipeline) Candidates() []model.Candidate {
	return p.store.All()
}

// Remove deletes a candidate by id. Removing an absent id is a no-op.
func (p *Pipeline) Remove(id int) {
	p.store.RemoveByID(id)
}

func (p *Pipeline) scoreTexts(ctx context.Context, jobDescription, resumeText string) (float64, error) {
	return p.scorer.Score(ctx, normalizer.Normalize(jobDescription), normalizer.Normalize(resumeText))
}

func (p *Pipeline) classify(score, threshold float64) model.Status {
	if score >= threshold {
		return model.StatusMatched
	}
	return model.StatusRejected
}

func (p *Pipeline) extractText(filename, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return p.extractor.ExtractPDF(path)
	case ".docx":
		return p.extractor.ExtractDOCX(path)
	default:
		return "", errors.NewUnsupportedFormatError(filename)
	}
}

func supportedFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}

func extractEmail(rawText string) string {
	if match := emailRegex.FindString(rawText); match != "" {
		return match
	}
	return model.NoEmailFound
}

func preview(rawText string) string {
	runes := []rune(rawText)
	if len(runes) <= model.PreviewLength {
		return rawText
	}
	return string(runes[:model.PreviewLength])
}
