package motion

import (
	"reflect"
	"testing"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/types"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		line string
		g    Granularity
		want []string
	}{
		{
			name: "word granularity",
			line: "foo_bar  baz.qux",
			g:    Word,
			want: []string{"foo_bar", "  ", "baz", ".", "qux"},
		},
		{
			name: "big word granularity",
			line: "foo_bar  baz.qux",
			g:    BigWord,
			want: []string{"foo_bar", "  ", "baz.qux"},
		},
		{
			name: "repeated symbol is one token",
			line: "a==b",
			g:    Word,
			want: []string{"a", "==", "b"},
		},
		{
			name: "different symbols split",
			line: "a.,b",
			g:    Word,
			want: []string{"a", ".", ",", "b"},
		},
		{
			name: "empty line",
			line: "",
			g:    Word,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.line, tt.g)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Partition(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func testSource(content string) LineSource {
	return buffer.NewSliceBufferFromString(content)
}

func TestNextBoundary(t *testing.T) {
	// Columns:      0123456789...
	src := testSource("foo_bar  baz.qux\n  second line")

	tests := []struct {
		name  string
		pos   types.Position
		g     Granularity
		e     Edge
		d     types.Direction
		want  types.Position
		found bool
	}{
		{
			name: "word right from start",
			pos:  types.Position{Line: 0, Col: 0},
			g:    Word, e: EdgeStart, d: types.DirRight,
			want: types.Position{Line: 0, Col: 9}, found: true,
		},
		{
			name: "word right from mid token",
			pos:  types.Position{Line: 0, Col: 3},
			g:    Word, e: EdgeStart, d: types.DirRight,
			want: types.Position{Line: 0, Col: 9}, found: true,
		},
		{
			name: "word right onto symbol",
			pos:  types.Position{Line: 0, Col: 9},
			g:    Word, e: EdgeStart, d: types.DirRight,
			want: types.Position{Line: 0, Col: 12}, found: true,
		},
		{
			name: "big word right skips symbol",
			pos:  types.Position{Line: 0, Col: 0},
			g:    BigWord, e: EdgeStart, d: types.DirRight,
			want: types.Position{Line: 0, Col: 9}, found: true,
		},
		{
			name: "word right crosses line",
			pos:  types.Position{Line: 0, Col: 13},
			g:    Word, e: EdgeStart, d: types.DirRight,
			want: types.Position{Line: 1, Col: 2}, found: true,
		},
		{
			name: "word left to token start",
			pos:  types.Position{Line: 0, Col: 3},
			g:    Word, e: EdgeStart, d: types.DirLeft,
			want: types.Position{Line: 0, Col: 0}, found: true,
		},
		{
			name: "word left from token start",
			pos:  types.Position{Line: 0, Col: 9},
			g:    Word, e: EdgeStart, d: types.DirLeft,
			want: types.Position{Line: 0, Col: 0}, found: true,
		},
		{
			name: "word left crosses line",
			pos:  types.Position{Line: 1, Col: 2},
			g:    Word, e: EdgeStart, d: types.DirLeft,
			want: types.Position{Line: 0, Col: 13}, found: true,
		},
		{
			name: "word end right within token",
			pos:  types.Position{Line: 0, Col: 0},
			g:    Word, e: EdgeEnd, d: types.DirRight,
			want: types.Position{Line: 0, Col: 6}, found: true,
		},
		{
			name: "word end right from token end",
			pos:  types.Position{Line: 0, Col: 6},
			g:    Word, e: EdgeEnd, d: types.DirRight,
			want: types.Position{Line: 0, Col: 11}, found: true,
		},
		{
			name: "word end left",
			pos:  types.Position{Line: 0, Col: 9},
			g:    Word, e: EdgeEnd, d: types.DirLeft,
			want: types.Position{Line: 0, Col: 6}, found: true,
		},
		{
			name: "no boundary left of buffer start",
			pos:  types.Position{Line: 0, Col: 0},
			g:    Word, e: EdgeStart, d: types.DirLeft,
			found: false,
		},
		{
			name: "no boundary right of last token",
			pos:  types.Position{Line: 1, Col: 9},
			g:    Word, e: EdgeStart, d: types.DirRight,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := NextBoundary(src, tt.pos, tt.g, tt.e, tt.d)
			if found != tt.found {
				t.Fatalf("found = %v, want %v (got %+v)", found, tt.found, got)
			}
			if found && got != tt.want {
				t.Errorf("pos = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWordUnderCursor(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want string
		ok   bool
	}{
		{name: "middle of word", line: "foo_bar baz", col: 3, want: "foo_bar", ok: true},
		{name: "second word", line: "foo_bar baz", col: 9, want: "baz", ok: true},
		{name: "on whitespace", line: "foo bar", col: 3, want: "", ok: false},
		{name: "on symbol", line: "a.b", col: 1, want: "", ok: false},
		{name: "past end clamps", line: "word", col: 10, want: "word", ok: true},
		{name: "empty line", line: "", col: 0, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WordUnderCursor([]byte(tt.line), tt.col)
			if ok != tt.ok || got != tt.want {
				t.Errorf("WordUnderCursor(%q, %d) = (%q, %v), want (%q, %v)",
					tt.line, tt.col, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank([]byte("   indented")); got != 3 {
		t.Errorf("FirstNonBlank = %d, want 3", got)
	}
	if got := FirstNonBlank([]byte("    ")); got != 0 {
		t.Errorf("FirstNonBlank on blank line = %d, want 0", got)
	}
}
