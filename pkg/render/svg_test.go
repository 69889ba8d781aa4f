package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/sgf"
)

func mustSpec(t *testing.T, size int) board.Spec {
	t.Helper()
	spec, err := board.ComputeSpec(size)
	if err != nil {
		t.Fatal(err)
	}
	return spec
}

func TestRenderSVGDeterministic(t *testing.T) {
	spec := mustSpec(t, 19)
	stones := []overlay.Stone{
		{Point: board.Point{Row: 4, Col: 4}, Color: sgf.Black},
		{Point: board.Point{Row: 16, Col: 16}, Color: sgf.White},
	}
	numbers := []overlay.Number{{Point: board.Point{Row: 4, Col: 4}, Seq: 1}}

	opts := []SVGOption{
		WithBackground("white"),
		WithGrid(),
		WithStones(stones),
		WithNumbers(numbers),
	}
	first := RenderSVG(spec, opts...)
	second := RenderSVG(spec, opts...)
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different markup")
	}
}

func TestRenderSVGCanvas(t *testing.T) {
	// side = 2*18 + 22*(19-1) = 432
	svg := string(RenderSVG(mustSpec(t, 19)))
	if !strings.Contains(svg, `width="432mm" height="432mm" viewBox="0 0 432 432"`) {
		t.Errorf("canvas dimensions missing or wrong:\n%s", firstLine(svg))
	}
}

func TestRenderSVGBackground(t *testing.T) {
	spec := mustSpec(t, 9)

	withBG := string(RenderSVG(spec, WithBackground("#ff0000")))
	if !strings.Contains(withBG, `<rect x="0" y="0"`) || !strings.Contains(withBG, `fill="#ff0000"`) {
		t.Error("background rect missing or wrong color")
	}

	withoutBG := string(RenderSVG(spec))
	if strings.Contains(withoutBG, "<rect") {
		t.Error("background rect emitted without WithBackground")
	}
}

func TestRenderSVGGrid(t *testing.T) {
	spec := mustSpec(t, 9)
	svg := string(RenderSVG(spec, WithGrid()))

	if got, want := strings.Count(svg, "<line "), 18; got != want {
		t.Errorf("line count = %d, want %d", got, want)
	}
	if got, want := strings.Count(svg, "<circle "), 5; got != want {
		t.Errorf("star point count = %d, want %d", got, want)
	}
	// Intersection (1,1) sits at the margin.
	if !strings.Contains(svg, `x1="18" y1="18"`) {
		t.Error("grid not anchored at the margin")
	}
}

func TestRenderSVGStones(t *testing.T) {
	spec := mustSpec(t, 19)
	stones := []overlay.Stone{
		{Point: board.Point{Row: 4, Col: 4}, Color: sgf.Black},
		{Point: board.Point{Row: 16, Col: 16}, Color: sgf.White},
	}
	svg := string(RenderSVG(spec, WithStones(stones)))

	// (4,4) maps to 18 + 3*22 = 84 on both axes.
	if !strings.Contains(svg, `<circle cx="84" cy="84"`) {
		t.Error("black stone not at expected canvas position")
	}
	if !strings.Contains(svg, `fill="#000000"`) || !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("stone fills missing")
	}
	// Radius = 22 * 0.42.
	if !strings.Contains(svg, `r="9.24"`) {
		t.Error("stone radius not derived from spacing and scale")
	}
}

func TestRenderSVGNumbersRequireStones(t *testing.T) {
	spec := mustSpec(t, 19)
	numbers := []overlay.Number{{Point: board.Point{Row: 4, Col: 4}, Seq: 1}}

	alone := string(RenderSVG(spec, WithNumbers(numbers)))
	if strings.Contains(alone, "<text") {
		t.Error("numbers drawn without stones")
	}

	stones := []overlay.Stone{{Point: board.Point{Row: 4, Col: 4}, Color: sgf.Black}}
	combined := string(RenderSVG(spec, WithStones(stones), WithNumbers(numbers)))
	if !strings.Contains(combined, `>1</text>`) {
		t.Error("number text missing when stones are drawn")
	}
}

func TestRenderSVGLayerOrder(t *testing.T) {
	spec := mustSpec(t, 9)
	stones := []overlay.Stone{{Point: board.Point{Row: 3, Col: 3}, Color: sgf.Black}}
	numbers := []overlay.Number{{Point: board.Point{Row: 3, Col: 3}, Seq: 1}}
	svg := string(RenderSVG(spec, WithBackground("white"), WithGrid(), WithStones(stones), WithNumbers(numbers)))

	rect := strings.Index(svg, "<rect")
	line := strings.Index(svg, "<line")
	text := strings.Index(svg, "<text")
	lastCircle := strings.LastIndex(svg, "<circle")

	if !(rect < line && line < lastCircle && lastCircle < text) {
		t.Errorf("layer order wrong: rect=%d line=%d lastCircle=%d text=%d", rect, line, lastCircle, text)
	}
}

func TestRenderSVGEscapesAttributes(t *testing.T) {
	spec := mustSpec(t, 9)
	svg := string(RenderSVG(spec, WithBackground(`"><script>`)))
	if strings.Contains(svg, "<script>") {
		t.Error("attribute value not escaped")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
