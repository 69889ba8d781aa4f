package board

import (
	"fmt"
	"testing"

	goberrors "github.com/goban-dev/goban/pkg/errors"
)

func TestComputeSpec(t *testing.T) {
	tests := []struct {
		size       int
		starCount  int
		center     int
		firstPoint Point
	}{
		{9, 5, 5, Point{3, 3}},
		{13, 5, 7, Point{4, 4}},
		{19, 9, 10, Point{4, 4}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.size, tt.size), func(t *testing.T) {
			spec, err := ComputeSpec(tt.size)
			if err != nil {
				t.Fatalf("ComputeSpec(%d) error = %v", tt.size, err)
			}
			if spec.Size != tt.size {
				t.Errorf("Size = %d, want %d", spec.Size, tt.size)
			}
			if spec.Intersections != tt.size*tt.size {
				t.Errorf("Intersections = %d, want %d", spec.Intersections, tt.size*tt.size)
			}
			if spec.Center != tt.center {
				t.Errorf("Center = %d, want %d", spec.Center, tt.center)
			}
			if len(spec.StarPoints) != tt.starCount {
				t.Errorf("len(StarPoints) = %d, want %d", len(spec.StarPoints), tt.starCount)
			}
			if spec.StarPoints[0] != tt.firstPoint {
				t.Errorf("StarPoints[0] = %v, want %v", spec.StarPoints[0], tt.firstPoint)
			}
		})
	}
}

func TestComputeSpecInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, 8, 10, 15, 21, 100} {
		if _, err := ComputeSpec(size); !goberrors.Is(err, goberrors.ErrCodeInvalidSize) {
			t.Errorf("ComputeSpec(%d) error = %v, want INVALID_SIZE", size, err)
		}
	}
}

func TestStarPointsSorted(t *testing.T) {
	for _, size := range []int{9, 13, 19} {
		spec, err := ComputeSpec(size)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(spec.StarPoints); i++ {
			prev, cur := spec.StarPoints[i-1], spec.StarPoints[i]
			if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
				t.Errorf("size %d: StarPoints not strictly ascending at %d: %v then %v", size, i, prev, cur)
			}
		}
	}
}

// Star points must be symmetric under 180-degree rotation about the
// board center.
func TestStarPointsRotationSymmetry(t *testing.T) {
	for _, size := range []int{9, 13, 19} {
		spec, err := ComputeSpec(size)
		if err != nil {
			t.Fatal(err)
		}
		points := make(map[Point]bool, len(spec.StarPoints))
		for _, p := range spec.StarPoints {
			points[p] = true
		}
		for _, p := range spec.StarPoints {
			rotated := Point{Row: size + 1 - p.Row, Col: size + 1 - p.Col}
			if !points[rotated] {
				t.Errorf("size %d: rotation of %v = %v missing from star points", size, p, rotated)
			}
		}
	}
}

func TestStarPoints19(t *testing.T) {
	spec, err := ComputeSpec(19)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		{4, 4}, {4, 10}, {4, 16},
		{10, 4}, {10, 10}, {10, 16},
		{16, 4}, {16, 10}, {16, 16},
	}
	for i, p := range want {
		if spec.StarPoints[i] != p {
			t.Errorf("StarPoints[%d] = %v, want %v", i, spec.StarPoints[i], p)
		}
	}
}
