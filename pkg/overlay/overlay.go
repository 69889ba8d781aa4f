// Package overlay merges SGF setup stones and played moves into the final
// stone layout drawn on a diagram.
//
// The merge is a simple overlay: it computes no captures or ko, and a
// later stone simply overwrites an earlier one at the same point. Setup
// stones are applied first (black, then white, then clears), followed by
// the move sequence, optionally truncated to the first N placed moves.
// Move numbers are assigned either to the moves alone or to every placed
// entry including setup stones, depending on the numbering mode.
package overlay

import (
	"slices"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/sgf"
)

// Mode selects how the move sequence is applied.
type Mode string

// Render modes.
const (
	// ModePosition applies every move, producing the final position.
	ModePosition Mode = "position"

	// ModeMoves applies only the first MovesLimit placed moves.
	ModeMoves Mode = "moves"
)

// Numbering selects which stones receive move numbers.
type Numbering string

// Numbering modes.
const (
	NumberingNone  Numbering = "none"
	NumberingMoves Numbering = "moves"
	NumberingAll   Numbering = "all"
)

// Options controls how Build applies the move sequence.
type Options struct {
	Mode       Mode
	MovesLimit int // 0 = unlimited; only consulted in ModeMoves
	Numbering  Numbering
}

// Stone is an occupied intersection.
type Stone struct {
	Point board.Point
	Color sgf.Color
}

// Number is a move-number annotation at an intersection.
type Number struct {
	Point board.Point
	Seq   int
}

// StoneLayout maps occupied points to stone colors while preserving
// first-insertion order, so that rendering the same inputs always emits
// stones in the same order. Overwriting a point keeps its original
// position; removing and re-adding moves it to the end.
type StoneLayout struct {
	order  []board.Point
	colors map[board.Point]sgf.Color
}

// NewStoneLayout returns an empty layout.
func NewStoneLayout() *StoneLayout {
	return &StoneLayout{colors: make(map[board.Point]sgf.Color)}
}

// Set places a stone of the given color, overwriting any occupant.
func (l *StoneLayout) Set(p board.Point, c sgf.Color) {
	if _, ok := l.colors[p]; !ok {
		l.order = append(l.order, p)
	}
	l.colors[p] = c
}

// Remove clears the point if it is occupied.
func (l *StoneLayout) Remove(p board.Point) {
	if _, ok := l.colors[p]; !ok {
		return
	}
	delete(l.colors, p)
	l.order = slices.DeleteFunc(l.order, func(q board.Point) bool { return q == p })
}

// Color returns the occupant of p, if any.
func (l *StoneLayout) Color(p board.Point) (sgf.Color, bool) {
	c, ok := l.colors[p]
	return c, ok
}

// Len returns the number of occupied points.
func (l *StoneLayout) Len() int {
	return len(l.order)
}

// Stones returns the occupied intersections in insertion order.
func (l *StoneLayout) Stones() []Stone {
	stones := make([]Stone, 0, len(l.order))
	for _, p := range l.order {
		stones = append(stones, Stone{Point: p, Color: l.colors[p]})
	}
	return stones
}

// Build merges the record's setup stones and moves into a stone layout
// and, unless numbering is off, a number list.
//
// Two quirks of the overlay are deliberate: a setup stone cleared by AE
// keeps its slot in the "all" numbering sequence, and a point revisited
// by several entries is numbered once per entry even though only the
// final occupant is drawn.
func Build(rec sgf.Record, opts Options) (*StoneLayout, []Number) {
	layout := NewStoneLayout()
	var log []board.Point // every placed entry, setup first, then moves

	for _, tok := range rec.AddBlack {
		if p, ok := sgf.ToRowCol(tok); ok {
			layout.Set(p, sgf.Black)
			log = append(log, p)
		}
	}
	for _, tok := range rec.AddWhite {
		if p, ok := sgf.ToRowCol(tok); ok {
			layout.Set(p, sgf.White)
			log = append(log, p)
		}
	}
	for _, tok := range rec.AddEmpty {
		if p, ok := sgf.ToRowCol(tok); ok {
			layout.Remove(p)
		}
	}

	var applied []board.Point
	remaining := -1 // unlimited
	if opts.Mode == ModeMoves && opts.MovesLimit > 0 {
		remaining = opts.MovesLimit
	}
	for _, mv := range rec.Moves {
		if remaining == 0 {
			break
		}
		p, ok := sgf.ToRowCol(mv.Coord)
		if !ok {
			// Pass or unusable coordinate; does not consume the limit.
			continue
		}
		layout.Set(p, mv.Color)
		applied = append(applied, p)
		log = append(log, p)
		if remaining > 0 {
			remaining--
		}
	}

	return layout, numbers(opts.Numbering, applied, log)
}

func numbers(mode Numbering, applied, log []board.Point) []Number {
	var seq []board.Point
	switch mode {
	case NumberingMoves:
		seq = applied
	case NumberingAll:
		seq = log
	default:
		return nil
	}
	nums := make([]Number, 0, len(seq))
	for i, p := range seq {
		nums = append(nums, Number{Point: p, Seq: i + 1})
	}
	return nums
}
