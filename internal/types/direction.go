// internal/types/direction.go
package types

// Direction parameterizes symmetric algorithms (word scanning, line
// insertion/deletion, buffer search) so each is implemented once and takes
// the direction as data.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirAbove
	DirBelow
)

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirAbove:
		return DirBelow
	case DirBelow:
		return DirAbove
	}
	return d
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirAbove:
		return "above"
	case DirBelow:
		return "below"
	default:
		return "unknown"
	}
}
