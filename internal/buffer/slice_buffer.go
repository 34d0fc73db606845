// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/juanjux/neme/internal/types"
	"github.com/juanjux/neme/internal/utils"
)

// SliceBuffer stores the text as a slice of lines without trailing newlines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new files
		lines:    [][]byte{[]byte("")},
		modified: false,
	}
}

// NewSliceBufferFromString builds a buffer from a string, mostly for tests.
func NewSliceBufferFromString(content string) *SliceBuffer {
	sb := NewSliceBuffer()
	parts := bytes.Split([]byte(content), []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lineCopy := make([]byte, len(p))
		copy(lineCopy, p)
		lines[i] = lineCopy
	}
	sb.lines = lines
	return sb
}

// Load reads a file into the buffer. Replaces existing content.
// A nonexistent file yields a single empty line, not an error.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

// Lines returns the underlying line slice. Callers must not mutate it.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines, always at least 1.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the content of one line.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineRuneCount returns the number of runes on a line, 0 for invalid indices.
func (sb *SliceBuffer) LineRuneCount(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// Bytes joins all lines with newlines.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// Save writes the buffer content to the stored filePath, or to filePath if
// given.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Modification methods ---

// validatePosition clamps a position into the buffer and returns the byte
// offset of the (clamped) column on its line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	line := sb.lines[pos.Line]
	if pos.Col < 0 {
		pos.Col = 0
	}
	runeCount := utf8.RuneCount(line)
	if pos.Col > runeCount {
		pos.Col = runeCount
	}
	return pos, utils.RuneIndexToByteOffset(line, pos.Col)
}

// Insert inserts text at a given position. Handles single/multiple lines.
// Returns the position just past the inserted text.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	validPos, byteOffset := sb.validatePosition(pos)
	if len(text) == 0 {
		return validPos, nil
	}

	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	head := make([]byte, byteOffset)
	copy(head, currentLine[:byteOffset])
	sb.lines[validPos.Line] = append(head, insertLines[0]...)

	end := types.Position{
		Line: validPos.Line,
		Col:  validPos.Col + utf8.RuneCount(insertLines[0]),
	}

	if len(insertLines) > 1 {
		newLines := make([][]byte, len(insertLines)-1)
		for i := 1; i < len(insertLines); i++ {
			lineCopy := make([]byte, len(insertLines[i]))
			copy(lineCopy, insertLines[i])
			newLines[i-1] = lineCopy
		}
		last := len(newLines) - 1
		end = types.Position{
			Line: validPos.Line + len(newLines),
			Col:  utf8.RuneCount(newLines[last]),
		}
		newLines[last] = append(newLines[last], tail...)

		rest := make([][]byte, len(sb.lines[validPos.Line+1:]))
		copy(rest, sb.lines[validPos.Line+1:])
		sb.lines = append(sb.lines[:validPos.Line+1], append(newLines, rest...)...)
	} else {
		sb.lines[validPos.Line] = append(sb.lines[validPos.Line], tail...)
	}

	return end, nil
}

// Extract returns a copy of the text within the range (start inclusive, end
// exclusive) without modifying the buffer.
func (sb *SliceBuffer) Extract(start, end types.Position) ([]byte, error) {
	start, end = types.NormalizeRange(start, end)
	vStart, startOffset := sb.validatePosition(start)
	vEnd, endOffset := sb.validatePosition(end)

	if vStart == vEnd {
		return nil, nil
	}

	if vStart.Line == vEnd.Line {
		line := sb.lines[vStart.Line]
		out := make([]byte, endOffset-startOffset)
		copy(out, line[startOffset:endOffset])
		return out, nil
	}

	var out bytes.Buffer
	out.Write(sb.lines[vStart.Line][startOffset:])
	for i := vStart.Line + 1; i < vEnd.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[vEnd.Line][:endOffset])
	return out.Bytes(), nil
}

// Delete removes text within a given range (start inclusive, end exclusive)
// and returns the removed text.
func (sb *SliceBuffer) Delete(start, end types.Position) ([]byte, error) {
	removed, err := sb.Extract(start, end)
	if err != nil {
		return nil, fmt.Errorf("invalid delete range: %w", err)
	}
	if len(removed) == 0 {
		return nil, nil
	}

	start, end = types.NormalizeRange(start, end)
	vStart, startOffset := sb.validatePosition(start)
	vEnd, endOffset := sb.validatePosition(end)

	sb.modified = true

	startLineBytes := sb.lines[vStart.Line]

	if vStart.Line == vEnd.Line {
		head := make([]byte, startOffset)
		copy(head, startLineBytes[:startOffset])
		sb.lines[vStart.Line] = append(head, startLineBytes[endOffset:]...)
	} else {
		endLineBytes := sb.lines[vEnd.Line]
		head := make([]byte, startOffset)
		copy(head, startLineBytes[:startOffset])
		sb.lines[vStart.Line] = append(head, endLineBytes[endOffset:]...)

		// Remove lines (vStart.Line, vEnd.Line]
		firstToRemove := vStart.Line + 1
		if vEnd.Line+1 >= len(sb.lines) {
			sb.lines = sb.lines[:firstToRemove]
		} else {
			sb.lines = append(sb.lines[:firstToRemove], sb.lines[vEnd.Line+1:]...)
		}
	}

	// Buffer always has at least one line
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}

	return removed, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
