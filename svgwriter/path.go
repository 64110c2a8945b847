package svgwriter

import "strings"

// This file defines the path data builder used by
// Polycurve, Arc and Path.

// Operation is one command of a path's "d" attribute.
type Operation interface {
	appendTo(b *strings.Builder)
}

type MoveTo Point

type LineTo Point

type CubicTo [3]Point

// ArcTo is a circular arc of radius R to the point To.
type ArcTo struct {
	R     float64
	Large bool
	Sweep bool
	To    Point
}

type Close struct{}

func (op MoveTo) appendTo(b *strings.Builder) {
	b.WriteString("M ")
	b.WriteString(formatPoint(Point(op)))
}

func (op LineTo) appendTo(b *strings.Builder) {
	b.WriteString("L ")
	b.WriteString(formatPoint(Point(op)))
}

func (op CubicTo) appendTo(b *strings.Builder) {
	b.WriteString("C ")
	b.WriteString(formatPoint(op[0]))
	b.WriteByte(' ')
	b.WriteString(formatPoint(op[1]))
	b.WriteByte(' ')
	b.WriteString(formatPoint(op[2]))
}

func (op ArcTo) appendTo(b *strings.Builder) {
	r := FormatCoord(op.R)
	b.WriteString("A ")
	b.WriteString(r + "," + r)
	b.WriteString(" 0 ")
	b.WriteString(flag(op.Large))
	b.WriteByte(' ')
	b.WriteString(flag(op.Sweep))
	b.WriteByte(' ')
	b.WriteString(formatPoint(op.To))
}

func (Close) appendTo(b *strings.Builder) {
	b.WriteString("Z")
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Path describes a sequence of basic SVG path commands.
type Path []Operation

// ToSVGPath returns the value of the "d" attribute for the path.
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		op.appendTo(&b)
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new subpath at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Arc adds a circular arc of radius r to the current subpath.
func (p *Path) Arc(r float64, large, sweep bool, to Point) {
	*p = append(*p, ArcTo{R: r, Large: large, Sweep: sweep, To: to})
}

// Stop joins the ends of the subpath
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
