// Package extract recovers raw text from uploaded resume files. Unreadable
// pages are logged and skipped; only a file that cannot be opened or parsed
// at all yields an error.
package extract

import (
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	pdfextractor "github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
	"go.uber.org/zap"

	"github.com/zhassan-dev/resume-screener/internal/errors"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// Extractor implements services.TextExtractor for PDF and DOCX files.
type Extractor struct {
	log *zap.Logger
}

// New creates an Extractor logging skipped pages through the given logger.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log}
}

// ExtractPDF returns the concatenated text of every readable page.
func (e *Extractor) ExtractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewExtractionError(path, err)
	}
	defer f.Close()

	reader, err := pdfmodel.NewPdfReader(f)
	if err != nil {
		return "", errors.NewExtractionError(path, err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", errors.NewExtractionError(path, err)
	}

	var builder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			e.log.Warn("skipping unreadable pdf page",
				zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}

		ex, err := pdfextractor.New(page)
		if err != nil {
			e.log.Warn("skipping pdf page without extractor",
				zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			e.log.Warn("skipping pdf page with extraction error",
				zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}

// ExtractDOCX returns the plain text of a DOCX document with markup stripped.
func (e *Extractor) ExtractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", errors.NewExtractionError(path, err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	return stripDocumentXML(content), nil
}

// stripDocumentXML flattens document.xml markup into plain text. Paragraph
// ends become newlines so word boundaries survive tag removal.
func stripDocumentXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = tagRegex.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content))
}
