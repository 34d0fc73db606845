// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
// Using Rune index is important for future Unicode handling.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p is strictly before other in buffer order.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// NormalizeRange orders two positions so the first is not after the second.
func NormalizeRange(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
