package svgwriter

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestStrainControlStraightLine(t *testing.T) {
	a, b, c, d := StrainControl(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0))
	diff(t, []Point{Pt(1, 0), Pt(4./3, 0), Pt(5./3, 0), Pt(2, 0)}, []Point{a, b, c, d}, approx)
}

func TestStrainControlReversed(t *testing.T) {
	q0, p0, p1, q1 := Pt(0, 0), Pt(1, 2), Pt(3, 2.5), Pt(5, 1)
	a, b, c, d := StrainControl(q0, p0, p1, q1)
	ra, rb, rc, rd := StrainControl(q1, p1, p0, q0)
	diff(t, []Point{a, b, c, d}, []Point{rd, rc, rb, ra}, approx)
}

func TestSmoothPathSymmetric(t *testing.T) {
	// symmetric about x = 2
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1.5), Pt(3, 1), Pt(4, 0)}
	path := SmoothPath(points)
	if len(path) != 3 {
		t.Fatalf("expected 1 move and 2 curves, got %v", path)
	}
	diff(t, MoveTo(Pt(1, 1)), path[0])
	first, second := path[1].(CubicTo), path[2].(CubicTo)
	mirror := func(p Point) Point { return Pt(4-p.X, p.Y) }

	diff(t, Pt(2, 1.5), first[2])
	diff(t, Pt(3, 1), second[2])
	diff(t, mirror(first[0]), second[1], approx)
	diff(t, mirror(first[1]), second[0], approx)
	// the curve is smooth at the middle point: both tangents are horizontal
	if math.Abs(first[1].Y-1.5) > 1e-9 || math.Abs(second[0].Y-1.5) > 1e-9 {
		t.Errorf("expected horizontal tangents at the middle point, got %v %v", first[1], second[0])
	}
}

func TestSmoothPathClosed(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	closed := append(square, square[:3]...)
	path := SmoothPath(closed)
	// one curve per side, ending where it started
	if len(path) != 5 {
		t.Fatalf("unexpected path %v", path)
	}
	diff(t, Point(path[0].(MoveTo)), path[4].(CubicTo)[2], cmp.Comparer(func(a, b Point) bool {
		return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
	}))
}
