// internal/buffer/buffer.go
package buffer

import "github.com/juanjux/neme/internal/types"

// Buffer defines the interface for text buffer operations. Positions are
// rune-indexed; ranges are start inclusive, end exclusive.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// LineRuneCount returns the number of runes on a line, 0 for invalid
	// indices.
	LineRuneCount(index int) int
	// Insert places text at pos and returns the position just past the
	// inserted text.
	Insert(pos types.Position, text []byte) (types.Position, error)
	// Delete removes the range and returns the removed text (with newlines
	// between lines).
	Delete(start, end types.Position) ([]byte, error)
	// Extract returns a copy of the text in the range without modifying
	// the buffer.
	Extract(start, end types.Position) ([]byte, error)
	Save(filePath string) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
}
