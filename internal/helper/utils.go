package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"doc-summarizer/internal/models"
)

// GenerateUUID creates a random unique UUID string
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

// CreateFolder creates path and any missing parents
func CreateFolder(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// SummaryFileName maps "dir/notes.txt" to "notes_Summary.txt"
func SummaryFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + models.SummarySuffix
}

// WriteSummary writes text to <outputDir>/<input name>_Summary.txt, replacing
// any existing file, and returns the path written.
func WriteSummary(outputDir, inputPath, text string) (string, error) {
	if err := CreateFolder(outputDir); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, SummaryFileName(inputPath))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
