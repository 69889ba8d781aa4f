// Package sgf implements a deliberately minimal SGF reader for board
// diagrams.
//
// The parser extracts exactly what a diagram needs: the board size (SZ),
// setup stone lists (AB/AW/AE), and the linear move sequence (B/W). It
// reads the input left to right and treats semicolons and parentheses as
// structural noise, so branches and variations are flattened into one
// linear reading order. This is a scope limitation by design: the package
// is not a general SGF parser and performs no rule validation, capture
// logic, or variation handling.
//
// Per-token problems (unknown properties, bad coordinates, non-numeric SZ
// values) are tolerated silently so that one bad token cannot sink an
// otherwise usable file. The only hard failure is a property identifier
// followed by something other than an opening bracket where values were
// expected, which returns a MALFORMED_RECORD error.
package sgf

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goban-dev/goban/pkg/errors"
)

// Color identifies the player of a stone or move.
type Color string

// Stone colors as they appear in SGF property identifiers.
const (
	Black Color = "B"
	White Color = "W"
)

// Move is one entry of the linear move sequence.
// Coord is the raw two-letter SGF coordinate; empty means a pass.
type Move struct {
	Color Color
	Coord string
}

// Record holds everything the parser extracts from an SGF document.
// It is produced once per Parse call and not mutated afterwards.
type Record struct {
	// Size is the value of the last well-formed SZ property, or 0 when
	// the document carries none.
	Size int

	// AddBlack, AddWhite, and AddEmpty hold the raw coordinate tokens of
	// the AB, AW, and AE setup properties in file order.
	AddBlack []string
	AddWhite []string
	AddEmpty []string

	// Moves is the B/W move sequence in encounter order, branches
	// flattened.
	Moves []Move
}

// Parse scans text and extracts the diagram-relevant properties.
//
// Identifiers are runs of letters, compared uppercased; each may be
// followed by any number of bracket-delimited values. A backslash inside a
// bracket escapes the next character. Unrecognized identifiers are read
// and discarded.
func Parse(text string) (Record, error) {
	s := []rune(strings.ReplaceAll(text, "\r", ""))
	props := make(map[string][]string)
	var moves []Move

	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ';' || ch == '(' || ch == ')':
			i++
		case unicode.IsLetter(ch):
			ident, j := readIdent(s, i)
			var vals []string
			for j < len(s) && s[j] == '[' {
				var val string
				val, j = readBracketValue(s, j)
				vals = append(vals, val)
			}
			if len(vals) == 0 && j < len(s) && !valueTerminator(s[j]) {
				return Record{}, errors.New(errors.ErrCodeMalformedRecord,
					"expected '[' after property %q", ident)
			}
			switch up := strings.ToUpper(ident); up {
			case "B", "W":
				coord := ""
				if len(vals) > 0 {
					coord = vals[0]
				}
				moves = append(moves, Move{Color: Color(up), Coord: coord})
			default:
				props[up] = append(props[up], vals...)
			}
			i = j
		default:
			i++
		}
	}

	return Record{
		Size:     lastIntValue(props["SZ"]),
		AddBlack: props["AB"],
		AddWhite: props["AW"],
		AddEmpty: props["AE"],
		Moves:    moves,
	}, nil
}

// readIdent consumes a run of letters starting at i and returns the
// identifier along with the index of the first rune after it.
func readIdent(s []rune, i int) (string, int) {
	j := i
	for j < len(s) && unicode.IsLetter(s[j]) {
		j++
	}
	return string(s[i:j]), j
}

// readBracketValue consumes one [...] value starting at the opening
// bracket. A backslash escapes the following rune, including ']' and '\'
// itself. An unterminated value runs to the end of input.
func readBracketValue(s []rune, i int) (string, int) {
	j := i + 1 // skip '['
	var val []rune
	for j < len(s) {
		switch {
		case s[j] == '\\' && j+1 < len(s):
			val = append(val, s[j+1])
			j += 2
		case s[j] == ']':
			return string(val), j + 1
		default:
			val = append(val, s[j])
			j++
		}
	}
	return string(val), j
}

// valueTerminator reports whether ch may legally follow an identifier
// that carries no bracket values: structural markers, whitespace, or
// another property (letters are consumed by readIdent and cannot occur
// here).
func valueTerminator(ch rune) bool {
	return ch == ';' || ch == '(' || ch == ')' || unicode.IsSpace(ch)
}

// lastIntValue returns the last value of vals that parses as an integer,
// or 0 if none does. Malformed values are skipped, not fatal.
func lastIntValue(vals []string) int {
	for i := len(vals) - 1; i >= 0; i-- {
		if n, err := strconv.Atoi(strings.TrimSpace(vals[i])); err == nil {
			return n
		}
	}
	return 0
}
