package parser

import (
	"unicode/utf8"

	"doc-summarizer/internal/models"
)

// ChunkText slices text into consecutive pieces of at most size characters
// (runes). Boundaries ignore words and sentences. Joining the result gives
// back the input exactly; empty input gives no chunks.
func ChunkText(text string, size int) []string {
	if size <= 0 {
		size = models.DefaultChunkSize
	}
	if text == "" {
		return nil
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	start, n := 0, 0
	for i := range text {
		if n == size {
			chunks = append(chunks, text[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(chunks, text[start:])
}
