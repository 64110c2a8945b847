package svgwriter

import (
	"fmt"
	"math"
	"strings"
)

// This file implements the shapes, as thin
// formatting layers over Element.

// Group starts a group of objects, all with the same style.
func (d *Document) Group(style Style, extra ...Style) {
	d.Element("g", +1, false, style, extra...)
}

// Ungroup ends a group started by Group.
func (d *Document) Ungroup() {
	d.Element("g", -1, false, nil)
}

// Circle with given center and radius.
func (d *Document) Circle(center Point, radius float64, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`circle cx="%s" cy="%s" r="%s"`,
		FormatCoord(center.X), FormatCoord(center.Y), FormatCoord(radius)),
		0, false, style, extra...)
}

// Rectangle with corners at points p and q.
func (d *Document) Rectangle(p, q Point, style Style, extra ...Style) {
	x := math.Min(p.X, q.X)
	y := math.Min(p.Y, q.Y)
	diag := p.Sub(q)
	d.Element(fmt.Sprintf(`rect x="%s" y="%s" width="%s" height="%s"`,
		FormatCoord(x), FormatCoord(y), FormatCoord(math.Abs(diag.X)), FormatCoord(math.Abs(diag.Y))),
		0, false, style, extra...)
}

func pointList(points []Point) string {
	chunks := make([]string, len(points))
	for i, p := range points {
		chunks[i] = formatPoint(p)
	}
	return strings.Join(chunks, " ")
}

// Polygon with corners at the given points.
func (d *Document) Polygon(points []Point, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`polygon points="%s"`, pointList(points)), 0, false, style, extra...)
}

// Polyline through the given points.
func (d *Document) Polyline(points []Point, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`polyline points="%s"`, pointList(points)), 0, false, style, extra...)
}

// Path outputs an arbitrary path.
func (d *Document) Path(p Path, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`path d="%s"`, p.ToSVGPath()), 0, false, style, extra...)
}

// SmoothPath returns the path of Polycurve.
// It returns nil if less than 4 points are given.
func SmoothPath(points []Point) Path {
	if len(points) < 4 {
		return nil
	}
	var p Path
	p.Start(points[1])
	for i := 1; i < len(points)-2; i++ {
		_, b, c, e := StrainControl(points[i-1], points[i], points[i+1], points[i+2])
		p.CubeBezier(b, c, e)
	}
	return p
}

// Polycurve draws a smooth curve through the given points,
// excepting the first and last ones, which only determine the
// directions at both ends of the curve.
// Repeat the first three points at the end to obtain a smooth closed curve.
// Less than 4 points is an error, reported by Close.
func (d *Document) Polycurve(points []Point, style Style, extra ...Style) {
	p := SmoothPath(points)
	if p == nil {
		d.fail(fmt.Errorf("%w (got %d)", ErrShortCurve, len(points)))
		return
	}
	d.Path(p, style, extra...)
}

// Segment draws a line from p to q.
func (d *Document) Segment(p, q Point, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`line x1="%s" y1="%s" x2="%s" y2="%s"`,
		FormatCoord(p.X), FormatCoord(p.Y), FormatCoord(q.X), FormatCoord(q.Y)),
		0, false, style, extra...)
}

// Arc draws a circular arc from p to q with radius r.
// If `large` is true, the arc covers more than half of the circle.
// There is no sweep flag: swap p and q to draw the other side.
func (d *Document) Arc(p, q Point, r float64, large bool, style Style, extra ...Style) {
	var path Path
	path.Start(p)
	path.Arc(math.Abs(r), large, false, q)
	d.Path(path, style, extra...)
}

// Text writes a label at the given location.
// The label is written as is: the caller is responsible
// for escaping it.
func (d *Document) Text(label string, location Point, style Style, extra ...Style) {
	d.Element(fmt.Sprintf(`text x="%s" y="%s"`, FormatCoord(location.X), FormatCoord(location.Y)),
		+1, true, style, extra...)
	d.write(label)
	d.Element("text", -1, true, nil)
}
