package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_sanitizeFileName_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"empty", "", "file"},
		{"dot only", ".", "file"},
		{"spaces collapse to dash", "my summer photo.jpg", "my-summer-photo.jpg"},
		{"path stripped", "../../etc/passwd", "passwd"},
		{"windows path stripped", `C:\Users\jane\cv.docx`, "cv.docx"},
		{"accents folded", "résumé.pdf", "resume.pdf"},
		{"uppercased lowered", "REPORT.PDF", "report.pdf"},
		{"repeated separators", "a--__--b.txt", "a-b.txt"},
		{"windows reserved", "con.txt", "_con.txt"},
		{"only symbols", "!!!@@@.png", "file.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}

func Test_sanitizeFileName_LongNameTruncated(t *testing.T) {
	got := sanitizeFileName(strings.Repeat("a", 300) + ".txt")
	assert.LessOrEqual(t, len(got), maxBaseNameLen)
	assert.True(t, strings.HasSuffix(got, ".txt"))
}

func Test_safeObjectName_Table(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mimeType string
		want     string
	}{
		{"keeps extension", "photo.jpg", "image/jpeg", "photo.jpg"},
		{"unknown mime falls back", "blob", "application/x-unknown-thing", "blob.bin"},
		{"leading dots stripped", "...hidden.txt", "text/plain", "hidden.txt"},
		{"empty becomes file", "", "application/x-unknown-thing", "file.bin"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeObjectName(tt.fileName, tt.mimeType))
		})
	}
}

func Test_safeObjectName_ExtensionFromMime(t *testing.T) {
	// the exact extension the mime table picks is platform dependent
	got := safeObjectName("notes", "image/png")
	assert.True(t, strings.HasPrefix(got, "notes."), "got %q", got)
	assert.NotEqual(t, "notes.bin", got)
}
