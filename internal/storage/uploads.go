// Package storage manages the upload directory: path-addressable blob storage
// for resume files with read-back support for reclassification.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const dirPerm = 0o755

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Uploads stores resume files under a single directory. Stored names are
// UUID-prefixed so repeated uploads of the same filename never collide.
type Uploads struct {
	dir string
}

// NewUploads creates the upload directory if needed.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}
	return &Uploads{dir: dir}, nil
}

// Dir returns the upload directory path.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save writes the upload content to disk and returns the stored name.
func (u *Uploads) Save(filename string, content io.Reader) (string, error) {
	storedName := uuid.New().String() + "_" + SanitizeFilename(filename)

	f, err := os.Create(filepath.Join(u.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return storedName, nil
}

// Path returns the on-disk path for a stored name.
func (u *Uploads) Path(storedName string) string {
	return filepath.Join(u.dir, storedName)
}

// Exists reports whether the backing file for a stored name is still present.
func (u *Uploads) Exists(storedName string) bool {
	info, err := os.Stat(u.Path(storedName))
	return err == nil && !info.IsDir()
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are dropped and anything outside [a-zA-Z0-9._-] collapses
// to a single underscore.
func SanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	safe := unsafeChars.ReplaceAllString(base, "_")
	safe = strings.Trim(safe, "._")
	if safe == "" {
		return "upload"
	}
	return safe
}
