package svgicon

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the bounding box of paths, taking the exact
// extrema of bezier curves into account

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(l[0])
	p1x, p1y := fixedTof(l[1])
	return (p1x-p0x)*t + p0x, (p1y-p0y)*t + p0y
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p1x, p1y := fixedTof(cu[0])
	c1x, c1y := fixedTof(cu[1])
	c2x, c2y := fixedTof(cu[2])
	p2x, p2y := fixedTof(cu[3])

	aX, bX, cX := cubicDerivative(p1x, c1x, c2x, p2x)
	aY, bY, cY := cubicDerivative(p1y, c1y, c2y, p2y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// x = At^3 + Bt^2 + Ct + D with
// A = p3 - 3p2 + 3p1 - p0
// B = 3p2 - 6p1 + 3p0
// C = 3p1 - 3p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// the derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func boundingBox(curve bezier) (minX, minY, maxX, maxY float64) {
	resX, resY := curve.criticalPoints()
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, maxX = math.Min(x, minX), math.Max(x, maxX)
		minY, maxY = math.Min(y, minY), math.Max(y, maxY)
	}
	return
}

// Extent returns the bounding box of the path,
// or an empty Bounds for an empty path.
func (p Path) Extent() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var current, first fixed.Point26_6
	add := func(curve bezier) {
		x0, y0, x1, y1 := boundingBox(curve)
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, first = fixed.Point26_6(op), fixed.Point26_6(op)
			add(line{current, current})
		case LineTo:
			add(line{current, fixed.Point26_6(op)})
			current = fixed.Point26_6(op)
		case CubicTo:
			add(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			current = first
		}
	}
	if math.IsInf(minX, 1) {
		return Bounds{}
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Extent returns the bounding box of all the paths of the icon,
// in the coordinates of its view box. Texts are ignored.
func (s *Icon) Extent() Bounds {
	var out Bounds
	for i, svgp := range s.SVGPaths {
		e := svgp.Path.Extent()
		if i == 0 {
			out = e
			continue
		}
		out = out.union(e)
	}
	return out
}

func (b Bounds) union(o Bounds) Bounds {
	minX, minY := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	maxX, maxY := math.Max(b.X+b.W, o.X+o.W), math.Max(b.Y+b.H, o.Y+o.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
