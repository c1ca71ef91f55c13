package models

// Chunk is one fixed-size slice of a document's text
type Chunk struct {
	Index   int // 1-based, for logging
	Content string
}

// NewChunks numbers parts from 1 in order
func NewChunks(parts []string) []Chunk {
	chunks := make([]Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = Chunk{Index: i + 1, Content: p}
	}
	return chunks
}
