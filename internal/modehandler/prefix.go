// internal/modehandler/prefix.go
package modehandler

import (
	"errors"
	"strconv"
)

// NumberPrefix accumulates the digit count typed before a movement-mode
// command. A leading '0' is not part of a count: it is the home motion.
type NumberPrefix struct {
	digits string
}

// Append adds a digit to the prefix. It returns false for a '0' on an
// empty prefix, which callers treat as the home command instead.
func (p *NumberPrefix) Append(digit rune) bool {
	if digit == '0' && p.digits == "" {
		return false
	}
	p.digits += string(digit)
	return true
}

// Has reports whether any digits have been typed.
func (p *NumberPrefix) Has() bool {
	return p.digits != ""
}

// Value returns the accumulated count, defaulting to 1 with no prefix.
func (p *NumberPrefix) Value() int {
	if p.digits == "" {
		return 1
	}
	// Atoi caps at MaxInt on range errors, which is what an absurdly long
	// count should mean anyway.
	n, err := strconv.Atoi(p.digits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	if n < 1 {
		return 1
	}
	return n
}

// ValueClamped returns the count capped at max. Commands that operate on
// lines use this so an oversized count means "as far as the buffer goes"
// instead of feeding huge multipliers into the motion math.
func (p *NumberPrefix) ValueClamped(max int) int {
	n := p.Value()
	if max > 0 && n > max {
		return max
	}
	return n
}

// Clear resets the prefix.
func (p *NumberPrefix) Clear() {
	p.digits = ""
}

// String returns the typed digits, for the status bar.
func (p *NumberPrefix) String() string {
	return p.digits
}
