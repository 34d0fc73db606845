// internal/types/selection.go
package types

// SelectionMode describes the span tracking overlaid on the cursor.
type SelectionMode int

const (
	// SelectionDisabled means no selection is active.
	SelectionDisabled SelectionMode = iota
	// SelectionCharacter selects a character-wise range.
	SelectionCharacter
	// SelectionLine selects whole lines.
	SelectionLine
	// SelectionRectangular selects a column box.
	SelectionRectangular
)

// String returns a human-readable selection mode name.
func (s SelectionMode) String() string {
	switch s {
	case SelectionDisabled:
		return "disabled"
	case SelectionCharacter:
		return "character"
	case SelectionLine:
		return "line"
	case SelectionRectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}
