// Package board models Go board geometry.
//
// A board is described by a Spec: the grid size, the number of
// intersections, the center line, and the canonical star points (hoshi).
// Specs are value objects; construct one with ComputeSpec and treat it as
// immutable afterwards.
package board

import (
	"cmp"
	"slices"

	"github.com/goban-dev/goban/pkg/errors"
)

// Point is a 1-based (row, column) intersection on the board.
type Point struct {
	Row int
	Col int
}

// Spec describes the geometry of a Go board.
type Spec struct {
	// Size is the number of lines per side (9, 13, or 19).
	Size int

	// Intersections is Size squared.
	Intersections int

	// Center is the 1-based index of the middle line.
	Center int

	// StarPoints holds the hoshi points, sorted by (row, col) ascending.
	StarPoints []Point
}

// ComputeSpec builds the Spec for the given board size.
// Supported sizes are 9, 13, and 19; anything else returns an
// INVALID_SIZE error.
func ComputeSpec(size int) (Spec, error) {
	var k int
	switch size {
	case 19, 13:
		k = 4
	case 9:
		k = 3
	default:
		return Spec{}, errors.New(errors.ErrCodeInvalidSize, "board size must be 9, 13, or 19 (got %d)", size)
	}

	mid := (size + 1) / 2
	far := size - k + 1

	var pts []Point
	if size == 19 {
		// Full 3x3 hoshi grid.
		for _, r := range []int{k, mid, far} {
			for _, c := range []int{k, mid, far} {
				pts = append(pts, Point{r, c})
			}
		}
	} else {
		// Four corner points plus the center.
		pts = []Point{{k, k}, {k, far}, {far, k}, {far, far}, {mid, mid}}
	}

	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return Spec{
		Size:          size,
		Intersections: size * size,
		Center:        mid,
		StarPoints:    pts,
	}, nil
}
