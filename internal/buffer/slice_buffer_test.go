package buffer

import (
	"testing"

	"github.com/juanjux/neme/internal/types"
)

func TestInsertSingleLine(t *testing.T) {
	sb := NewSliceBufferFromString("hello world")
	end, err := sb.Insert(types.Position{Line: 0, Col: 5}, []byte(" brave"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "hello brave world" {
		t.Errorf("content = %q, want %q", got, "hello brave world")
	}
	if end != (types.Position{Line: 0, Col: 11}) {
		t.Errorf("end = %+v, want {0 11}", end)
	}
	if !sb.IsModified() {
		t.Error("buffer should be marked modified")
	}
}

func TestInsertMultiLine(t *testing.T) {
	sb := NewSliceBufferFromString("abdef")
	end, err := sb.Insert(types.Position{Line: 0, Col: 2}, []byte("c\nnew"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "abc\nnewdef" {
		t.Errorf("content = %q, want %q", got, "abc\nnewdef")
	}
	if end != (types.Position{Line: 1, Col: 3}) {
		t.Errorf("end = %+v, want {1 3}", end)
	}
}

func TestDeleteReturnsRemovedText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   types.Position
		end     types.Position
		removed string
		after   string
	}{
		{
			name:    "within line",
			content: "hello world",
			start:   types.Position{Line: 0, Col: 5},
			end:     types.Position{Line: 0, Col: 11},
			removed: " world",
			after:   "hello",
		},
		{
			name:    "across lines",
			content: "one\ntwo\nthree",
			start:   types.Position{Line: 0, Col: 2},
			end:     types.Position{Line: 2, Col: 2},
			removed: "e\ntwo\nth",
			after:   "onree",
		},
		{
			name:    "whole line with newline",
			content: "one\ntwo",
			start:   types.Position{Line: 0, Col: 0},
			end:     types.Position{Line: 1, Col: 0},
			removed: "one\n",
			after:   "two",
		},
		{
			name:    "reversed range is normalized",
			content: "hello",
			start:   types.Position{Line: 0, Col: 4},
			end:     types.Position{Line: 0, Col: 1},
			removed: "ell",
			after:   "ho",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSliceBufferFromString(tt.content)
			removed, err := sb.Delete(tt.start, tt.end)
			if err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if string(removed) != tt.removed {
				t.Errorf("removed = %q, want %q", removed, tt.removed)
			}
			if got := string(sb.Bytes()); got != tt.after {
				t.Errorf("content = %q, want %q", got, tt.after)
			}
		})
	}
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	sb := NewSliceBufferFromString("text")
	removed, err := sb.Delete(types.Position{Line: 0, Col: 2}, types.Position{Line: 0, Col: 2})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != nil {
		t.Errorf("removed = %q, want nil", removed)
	}
	if sb.IsModified() {
		t.Error("no-op delete should not mark buffer modified")
	}
}

func TestExtractDoesNotModify(t *testing.T) {
	sb := NewSliceBufferFromString("alpha\nbeta")
	got, err := sb.Extract(types.Position{Line: 0, Col: 3}, types.Position{Line: 1, Col: 2})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if string(got) != "ha\nbe" {
		t.Errorf("extract = %q, want %q", got, "ha\nbe")
	}
	if string(sb.Bytes()) != "alpha\nbeta" {
		t.Errorf("buffer changed by Extract: %q", sb.Bytes())
	}
	if sb.IsModified() {
		t.Error("Extract must not mark buffer modified")
	}
}

func TestLineRuneCount(t *testing.T) {
	sb := NewSliceBufferFromString("héllo\nwörld")
	if got := sb.LineRuneCount(0); got != 5 {
		t.Errorf("LineRuneCount(0) = %d, want 5", got)
	}
	if got := sb.LineRuneCount(5); got != 0 {
		t.Errorf("LineRuneCount(5) = %d, want 0 for invalid index", got)
	}
}

func TestBufferNeverEmpty(t *testing.T) {
	sb := NewSliceBufferFromString("only")
	if _, err := sb.Delete(types.Position{Line: 0, Col: 0}, types.Position{Line: 0, Col: 4}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if sb.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", sb.LineCount())
	}
}
