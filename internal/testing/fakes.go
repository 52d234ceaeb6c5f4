// Package testing provides shared fakes for exercising the screening pipeline
// without network, SMTP, or real document parsing.
package testing

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/zhassan-dev/resume-screener/internal/errors"
)

// FakeEmbedderDim is the dimension of vectors produced by FakeEmbedder.
// The vocabulary of a single test never comes close to this.
const FakeEmbedderDim = 512

// CorruptMarker at the start of a stored file makes FakeExtractor fail for it.
const CorruptMarker = "CORRUPT"

// FakeEmbedder is a deterministic bag-of-words embedder: each distinct
// whitespace token gets its own dimension of a fixed-size count vector.
// Disjoint texts therefore score exactly 0, identical texts exactly 1, and
// overlapping texts something in between.
type FakeEmbedder struct {
	mu    sync.Mutex
	vocab map[string]int
	calls int64
}

// Embed implements services.Embedder.
func (f *FakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	atomic.AddInt64(&f.calls, 1)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.vocab == nil {
		f.vocab = make(map[string]int)
	}

	vec := make([]float32, FakeEmbedderDim)
	for _, token := range strings.Fields(text) {
		idx, ok := f.vocab[token]
		if !ok {
			idx = len(f.vocab) % FakeEmbedderDim
			f.vocab[token] = idx
		}
		vec[idx]++
	}
	return vec, nil
}

// Calls returns how many times Embed was invoked.
func (f *FakeEmbedder) Calls() int64 {
	return atomic.LoadInt64(&f.calls)
}

// FakeExtractor treats stored files as plain text regardless of extension.
// A file whose content starts with CorruptMarker is reported as unreadable,
// and a missing file surfaces its open error.
type FakeExtractor struct{}

func (FakeExtractor) extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewExtractionError(path, err)
	}
	text := string(data)
	if strings.HasPrefix(text, CorruptMarker) {
		return "", errors.NewExtractionError(path, fmt.Errorf("unreadable content"))
	}
	return text, nil
}

// ExtractPDF implements services.TextExtractor.
func (f FakeExtractor) ExtractPDF(path string) (string, error) { return f.extract(path) }

// ExtractDOCX implements services.TextExtractor.
func (f FakeExtractor) ExtractDOCX(path string) (string, error) { return f.extract(path) }

// SentMail records one delivered notification.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// FakeNotifier records sends and can be told to fail for specific recipients.
type FakeNotifier struct {
	mu      sync.Mutex
	sent    []SentMail
	failFor map[string]bool
}

// FailFor makes future sends to the given address fail.
func (f *FakeNotifier) FailFor(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor == nil {
		f.failFor = make(map[string]bool)
	}
	f.failFor[address] = true
}

// Send implements services.Notifier.
func (f *FakeNotifier) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[to] {
		return fmt.Errorf("smtp refused recipient %s", to)
	}
	f.sent = append(f.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the delivered notifications.
func (f *FakeNotifier) Sent() []SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentMail, len(f.sent))
	copy(out, f.sent)
	return out
}
