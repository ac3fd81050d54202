package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/plotsmith/gographer/pkg/types"
)

// Glyphs cycled per curve.
var curveGlyphs = []rune{'*', '+', '~', '%', '&', '$'}

// render draws all committed definitions onto an ASCII canvas sized to the
// viewport, followed by any located intersection points.
func (m *model) render() string {
	w := m.viewport.Width
	h := m.viewport.Height
	if w < 8 || h < 4 {
		return "window too small"
	}

	var footer []string
	canvas := newCanvas(w, h-1)
	canvas.axes(m.xMin, m.xMax, m.yMin, m.yMax)

	for i, e := range m.entries {
		glyph := curveGlyphs[i%len(curveGlyphs)]
		switch e.def.Type {
		case types.DefFunction:
			m.renderCurve(canvas, e.def.Expr, glyph)

		case types.DefEquation:
			m.renderCurve(canvas, e.def.Left, glyph)
			m.renderCurve(canvas, e.def.Right, glyph)
			footer = append(footer, m.renderIntersections(canvas, e.def)...)

		case types.DefInequation:
			m.renderCurve(canvas, e.def.Left, glyph)
			m.renderCurve(canvas, e.def.Right, glyph)
			m.renderRegion(canvas, e.def)

		case types.DefPoint:
			m.renderPoint(canvas, e.def, glyph)
		}
	}

	header := fmt.Sprintf("x:[%g, %g] y:[%g, %g]", m.xMin, m.xMax, m.yMin, m.yMax)
	out := axisStyle.Render(header) + "\n" + canvas.String()
	if len(footer) > 0 {
		out += "\n" + crossStyle.Render(strings.Join(footer, "  "))
	}
	return out
}

// renderCurve samples one expression and plots its segments.
func (m *model) renderCurve(c *canvas, src string, glyph rune) {
	expr, err := m.ev.Compile(src)
	if err != nil {
		return
	}
	dom, _ := types.NewInterval(math.Inf(-1), math.Inf(1))
	for _, seg := range m.sampler.Trace(expr, m.env, dom, m.xMin, m.xMax, c.w) {
		for _, p := range seg {
			c.plot(p.X, p.Y, m.xMin, m.xMax, m.yMin, m.yMax, glyph)
		}
	}
}

// renderIntersections marks equation solutions and returns their readout.
func (m *model) renderIntersections(c *canvas, def *types.Definition) []string {
	le, err := m.ev.Compile(def.Left)
	if err != nil {
		return nil
	}
	re, err := m.ev.Compile(def.Right)
	if err != nil {
		return nil
	}

	pts := m.isect.FindIntersections(le, re, m.env, m.xMin, m.xMax, c.w)
	out := make([]string, 0, len(pts))
	for _, p := range pts {
		c.plot(p.X, p.Y, m.xMin, m.xMax, m.yMin, m.yMax, 'X')
		out = append(out, fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y))
	}
	return out
}

// renderRegion shades the bottom canvas row under every column where the
// inequality holds.
func (m *model) renderRegion(c *canvas, def *types.Definition) {
	le, err := m.ev.Compile(def.Left)
	if err != nil {
		return
	}
	re, err := m.ev.Compile(def.Right)
	if err != nil {
		return
	}

	xs := make([]float64, c.w)
	for col := 0; col < c.w; col++ {
		xs[col] = m.xMin + (m.xMax-m.xMin)*float64(col)/float64(c.w-1)
	}
	mask := m.sampler.RegionMask(le, re, m.env, def.Op, xs)
	for col, on := range mask {
		if on {
			c.set(col, c.h-1, '#')
		}
	}
}

// renderPoint plots a point definition, enumerating set values when a
// coordinate references a defined set.
func (m *model) renderPoint(c *canvas, def *types.Definition, glyph rune) {
	xe, err := m.ev.Compile(def.XExpr)
	if err != nil {
		return
	}
	ye, err := m.ev.Compile(def.YExpr)
	if err != nil {
		return
	}

	plotOnce := func() {
		px, err := m.ev.EvalAt(xe, m.env, 0)
		if err != nil {
			return
		}
		py, err := m.ev.EvalAt(ye, m.env, 0)
		if err != nil {
			return
		}
		c.plot(px, py, m.xMin, m.xMax, m.yMin, m.yMax, glyph)
	}

	if set := m.referencedSet(def); set != nil {
		for _, v := range set.Values {
			m.env.SetParam(set.Name, v)
			plotOnce()
		}
		return
	}
	plotOnce()
}

// referencedSet returns the first defined set whose name occurs in the
// point's coordinate expressions.
func (m *model) referencedSet(def *types.Definition) *types.Definition {
	for _, e := range m.entries {
		if e.def.Type != types.DefExplicitSet && e.def.Type != types.DefRangeSet {
			continue
		}
		if strings.Contains(def.XExpr, e.def.Name) || strings.Contains(def.YExpr, e.def.Name) {
			return e.def
		}
	}
	return nil
}

// canvas is a rune grid in screen orientation: row 0 is the top.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(col, row int, glyph rune) {
	if col >= 0 && col < c.w && row >= 0 && row < c.h {
		c.cells[row][col] = glyph
	}
}

// plot maps a mathematical coordinate into the grid.
func (c *canvas) plot(x, y, xMin, xMax, yMin, yMax float64, glyph rune) {
	if x < xMin || x > xMax || y < yMin || y > yMax {
		return
	}
	col := int(math.Round((x - xMin) / (xMax - xMin) * float64(c.w-1)))
	row := c.h - 1 - int(math.Round((y-yMin)/(yMax-yMin)*float64(c.h-1)))
	c.set(col, row, glyph)
}

// axes draws the x and y axes when the origin is visible.
func (c *canvas) axes(xMin, xMax, yMin, yMax float64) {
	if yMin <= 0 && yMax >= 0 {
		row := c.h - 1 - int(math.Round((0-yMin)/(yMax-yMin)*float64(c.h-1)))
		for col := 0; col < c.w; col++ {
			c.set(col, row, '-')
		}
	}
	if xMin <= 0 && xMax >= 0 {
		col := int(math.Round((0 - xMin) / (xMax - xMin) * float64(c.w-1)))
		for row := 0; row < c.h; row++ {
			c.set(col, row, '|')
		}
	}
	if yMin <= 0 && yMax >= 0 && xMin <= 0 && xMax >= 0 {
		row := c.h - 1 - int(math.Round((0-yMin)/(yMax-yMin)*float64(c.h-1)))
		col := int(math.Round((0 - xMin) / (xMax - xMin) * float64(c.w-1)))
		c.set(col, row, '+')
	}
}

func (c *canvas) String() string {
	rows := make([]string, c.h)
	for i, row := range c.cells {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
