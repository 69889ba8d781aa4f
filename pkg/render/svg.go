// Package render produces board diagram markup.
//
// RenderSVG draws a board spec as an SVG document in millimeter units,
// with independently toggleable layers: a background rectangle, the grid
// with star points, the stone overlay, and move numbers. Output is
// deterministic: identical inputs yield byte-identical markup. ToPNG and
// ToPDF convert the SVG via rsvg-convert.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/sgf"
)

// Default canvas dimensions in millimeters.
const (
	DefaultLineSpacing = 22.0
	DefaultMargin      = 18.0
)

// Style holds the visual parameters of a diagram.
type Style struct {
	LineSpacing      float64 // distance between grid lines, mm
	Margin           float64 // border around the playing area, mm
	LineThickness    float64 // grid and stone outline stroke width
	StarDiameter     float64 // hoshi dot diameter, mm
	GridColor        string
	NumberColor      string
	OutlineColor     string
	StoneRadiusScale float64 // stone radius = LineSpacing * scale
	NumberFontScale  float64 // font size = LineSpacing * scale
}

// DefaultStyle returns the stock diagram style.
func DefaultStyle() Style {
	return Style{
		LineSpacing:      DefaultLineSpacing,
		Margin:           DefaultMargin,
		LineThickness:    1.0,
		StarDiameter:     2.2,
		GridColor:        "black",
		NumberColor:      "#ffffff",
		OutlineColor:     "#000000",
		StoneRadiusScale: 0.42,
		NumberFontScale:  0.44,
	}
}

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      Style
	background string // empty = no background rect
	grid       bool
	stones     []overlay.Stone
	numbers    []overlay.Number
}

// WithStyle overrides the default style.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground enables a full-canvas background rectangle in the given
// color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithGrid enables the grid and star point layer.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithStones enables the stone layer.
func WithStones(stones []overlay.Stone) SVGOption {
	return func(r *svgRenderer) { r.stones = stones }
}

// WithNumbers enables the move-number layer. Numbers are only drawn when
// stones are drawn as well.
func WithNumbers(nums []overlay.Number) SVGOption {
	return func(r *svgRenderer) { r.numbers = nums }
}

// RenderSVG draws spec with the requested layers and returns the SVG
// document. Element order is fixed: background, grid lines interleaved
// row-then-column in ascending index order, star points in spec order,
// stones in layout order, then numbers.
func RenderSVG(spec board.Spec, opts ...SVGOption) []byte {
	r := svgRenderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&r)
	}

	st := r.style
	side := st.Margin*2 + st.LineSpacing*float64(spec.Size-1)

	// pt maps a 1-based line index to its canvas coordinate.
	pt := func(i int) float64 {
		return st.Margin + float64(i-1)*st.LineSpacing
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`+"\n",
		num(side), num(side), num(side), num(side))

	if r.background != "" {
		fmt.Fprintf(&buf, `<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
			num(side), num(side), escape(r.background))
	}

	if r.grid {
		first, last := pt(1), pt(spec.Size)
		for i := 1; i <= spec.Size; i++ {
			at := pt(i)
			fmt.Fprintf(&buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				num(first), num(at), num(last), num(at), escape(st.GridColor), num(st.LineThickness))
			fmt.Fprintf(&buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				num(at), num(first), num(at), num(last), escape(st.GridColor), num(st.LineThickness))
		}
		hoshiR := st.StarDiameter / 2
		for _, p := range spec.StarPoints {
			fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				num(pt(p.Col)), num(pt(p.Row)), num(hoshiR), escape(st.GridColor))
		}
	}

	if len(r.stones) > 0 {
		stoneR := st.LineSpacing * st.StoneRadiusScale
		for _, s := range r.stones {
			fill := "#000000"
			if s.Color == sgf.White {
				fill = "#ffffff"
			}
			fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				num(pt(s.Point.Col)), num(pt(s.Point.Row)), num(stoneR), fill,
				escape(st.OutlineColor), num(st.LineThickness))
		}
		if len(r.numbers) > 0 {
			fontSize := st.LineSpacing * st.NumberFontScale
			for _, n := range r.numbers {
				fmt.Fprintf(&buf, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
					num(pt(n.Point.Col)), num(pt(n.Point.Row)), num(fontSize), escape(st.NumberColor), n.Seq)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// num formats a coordinate or length without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escape makes a string safe for use in an SVG attribute.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
