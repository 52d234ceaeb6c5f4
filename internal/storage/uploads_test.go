package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndReadBack(t *testing.T) {
	uploads, err := NewUploads(t.TempDir())
	require.NoError(t, err)

	storedName, err := uploads.Save("resume.pdf", strings.NewReader("resume body"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(storedName, "_resume.pdf"))
	assert.True(t, uploads.Exists(storedName))

	data, err := os.ReadFile(uploads.Path(storedName))
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(data))
}

func TestSaveSameNameTwiceDoesNotCollide(t *testing.T) {
	uploads, err := NewUploads(t.TempDir())
	require.NoError(t, err)

	first, err := uploads.Save("resume.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := uploads.Save("resume.pdf", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, uploads.Exists(first))
	assert.True(t, uploads.Exists(second))
}

func TestExistsAfterDeletion(t *testing.T) {
	uploads, err := NewUploads(t.TempDir())
	require.NoError(t, err)

	storedName, err := uploads.Save("resume.pdf", strings.NewReader("body"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(uploads.Path(storedName)))
	assert.False(t, uploads.Exists(storedName))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "resume.pdf", "resume.pdf"},
		{"spaces", "my resume final.pdf", "my_resume_final.pdf"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\resume.docx`, "resume.docx"},
		{"special chars", "r\u00e9sum\u00e9 (1).pdf", "r_sum_1_.pdf"},
		{"empty", "", "upload"},
		{"only unsafe", "???", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}
