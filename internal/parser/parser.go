package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"doc-summarizer/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported file format, only .docx and .txt are supported")

// ReadDocument returns the full text of a .docx or .txt file
func ReadDocument(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".docx":
		return parseDOCX(filePath)
	case ".txt":
		return parseText(filePath)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadAndChunk reads a document and slices it into chunks of at most
// chunkSize characters. On any read failure it returns no chunks.
func ReadAndChunk(filePath string, chunkSize int) ([]models.Chunk, error) {
	text, err := ReadDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	return models.NewChunks(ChunkText(text, chunkSize)), nil
}

// parseDOCX joins the text of every body paragraph with newlines
func parseDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	paragraphs, err := bodyParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

func parseText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
