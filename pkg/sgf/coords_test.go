package sgf

import (
	"testing"

	"github.com/goban-dev/goban/pkg/board"
)

func TestToRowCol(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  board.Point
		ok    bool
	}{
		{"origin", "aa", board.Point{Row: 1, Col: 1}, true},
		{"column first", "ba", board.Point{Row: 1, Col: 2}, true},
		{"row second", "ab", board.Point{Row: 2, Col: 1}, true},
		{"tengen 19", "jj", board.Point{Row: 10, Col: 10}, true},
		{"last letter", "zz", board.Point{Row: 26, Col: 26}, true},
		{"empty is pass", "", board.Point{}, false},
		{"single char", "a", board.Point{}, false},
		{"three chars", "aaa", board.Point{}, false},
		{"uppercase rejected", "AA", board.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToRowCol(tt.token)
			if ok != tt.ok {
				t.Fatalf("ToRowCol(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ToRowCol(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
