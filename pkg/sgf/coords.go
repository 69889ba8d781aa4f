package sgf

import "github.com/goban-dev/goban/pkg/board"

// ToRowCol converts a two-letter SGF coordinate to a 1-based board point:
// the first letter is the column, the second the row, with 'a' mapping
// to 1. It returns false for an empty token (a pass), a token that is not
// exactly two runes, or a resulting row or column below 1. It never fails
// hard; bad tokens are simply reported as "no position".
func ToRowCol(token string) (board.Point, bool) {
	r := []rune(token)
	if len(r) != 2 {
		return board.Point{}, false
	}
	col := int(r[0]-'a') + 1
	row := int(r[1]-'a') + 1
	if row < 1 || col < 1 {
		return board.Point{}, false
	}
	return board.Point{Row: row, Col: col}, true
}
