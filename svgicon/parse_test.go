package svgicon

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/pads/svgwriter"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/fixed"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// roughly the precision of fixed points
var approx = cmpopts.EquateApprox(0, 0.05)

// emit builds a document with `draw` and parses it back
func emit(t *testing.T, opts *svgwriter.Options, draw func(doc *svgwriter.Document)) *Icon {
	t.Helper()
	var buf bytes.Buffer
	doc := svgwriter.New(svgwriter.Pt(100, 80), &buf, opts)
	draw(doc)
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	icon, err := ReadIconStream(&buf, StrictErrorMode)
	if err != nil {
		t.Fatalf("can't parse emitted document: %s\n%s", err, buf.String())
	}
	return icon
}

func TestReadRoot(t *testing.T) {
	for _, opts := range []*svgwriter.Options{nil, {Prefix: "s", Indentation: 2}} {
		icon := emit(t, opts, func(doc *svgwriter.Document) {})
		diff(t, Bounds{W: 100, H: 80}, icon.ViewBox)
		diff(t, 100., icon.Width)
		diff(t, 80., icon.Height)
	}
}

func TestReadCircle(t *testing.T) {
	icon := emit(t, nil, func(doc *svgwriter.Document) {
		doc.Circle(svgwriter.Pt(50, 50), 10, svgwriter.Style{"fill": svgwriter.Red})
	})
	if len(icon.SVGPaths) != 1 {
		t.Fatalf("expected one path, got %d", len(icon.SVGPaths))
	}
	style := icon.SVGPaths[0].Style
	diff(t, color.NRGBA{0xBC, 0x1E, 0x46, 0xff}, style.FillerColor)
	diff(t, nil, style.LinerColor)
	diff(t, Bounds{X: 40, Y: 40, W: 20, H: 20}, icon.Extent(), approx)
}

func TestReadGroupStyle(t *testing.T) {
	icon := emit(t, nil, func(doc *svgwriter.Document) {
		doc.Group(svgwriter.Style{"stroke": svgwriter.Black, "fill": svgwriter.None, "stroke-width": "2"})
		doc.Rectangle(svgwriter.Pt(10, 20), svgwriter.Pt(30, 5), nil, svgwriter.Style{"stroke-opacity": "0.5"})
		doc.Ungroup()
		doc.Segment(svgwriter.Pt(0, 0), svgwriter.Pt(10, 10), svgwriter.Style{"stroke": "blue"})
	})
	if len(icon.SVGPaths) != 2 {
		t.Fatalf("expected two paths, got %d", len(icon.SVGPaths))
	}
	rect, segment := icon.SVGPaths[0], icon.SVGPaths[1]
	diff(t, PathStyle{
		FillOpacity: 1, LineOpacity: 0.5, LineWidth: 2, FontSize: 16,
		LinerColor: color.NRGBA{A: 0xff},
	}, rect.Style)
	diff(t, Bounds{X: 10, Y: 5, W: 20, H: 15}, rect.Path.Extent())
	// the group style does not leak after ungroup
	diff(t, 1., segment.Style.LineWidth)
	diff(t, color.Color(color.RGBA{0, 0, 0xff, 0xff}), segment.Style.LinerColor)
}

func TestReadText(t *testing.T) {
	icon := emit(t, nil, func(doc *svgwriter.Document) {
		doc.Text("x &lt; y", svgwriter.Pt(5, 15.5), svgwriter.Style{"font-size": "12px"})
	})
	if len(icon.Texts) != 1 {
		t.Fatalf("expected one text, got %d", len(icon.Texts))
	}
	text := icon.Texts[0]
	diff(t, "x < y", text.Label)
	diff(t, [2]float64{5, 15.5}, [2]float64{text.X, text.Y})
	diff(t, 12., text.Style.FontSize)
}

func TestReadCurves(t *testing.T) {
	points := []svgwriter.Point{
		svgwriter.Pt(0, 0), svgwriter.Pt(10, 10), svgwriter.Pt(20, 5),
		svgwriter.Pt(30, 10), svgwriter.Pt(40, 0),
	}
	icon := emit(t, nil, func(doc *svgwriter.Document) {
		doc.Polycurve(points, svgwriter.Style{"fill": svgwriter.None, "stroke": svgwriter.Blue})
		doc.Arc(svgwriter.Pt(0, 0), svgwriter.Pt(10, 0), 5, false, nil)
		doc.Polygon(points, nil)
		doc.Polyline(points, nil)
	})
	if len(icon.SVGPaths) != 4 {
		t.Fatalf("expected 4 paths, got %d", len(icon.SVGPaths))
	}

	curve := icon.SVGPaths[0].Path
	if len(curve) != 3 {
		t.Fatalf("expected a move and two cubics, got %s", curve)
	}
	diff(t, MoveTo(toFixedP(10, 10)), curve[0])
	diff(t, toFixedP(30, 10), curve[2].(CubicTo)[2])

	arc := icon.SVGPaths[1].Path.Extent()
	diff(t, Bounds{X: 0, Y: 0, W: 10, H: 5}, arc, approx)

	polygon, polyline := icon.SVGPaths[2].Path, icon.SVGPaths[3].Path
	diff(t, len(points)+1, len(polygon))
	diff(t, Close{}, polygon[len(polygon)-1])
	diff(t, len(points), len(polyline))
}

func TestCompilePath(t *testing.T) {
	for _, test := range []struct {
		d    string
		want Path
	}{
		{"M 0,0 L 10,0 L 10,10 Z", Path{
			MoveTo(toFixedP(0, 0)), LineTo(toFixedP(10, 0)), LineTo(toFixedP(10, 10)), Close{},
		}},
		{"m1,1 l2,0 h3 v4 z", Path{
			MoveTo(toFixedP(1, 1)), LineTo(toFixedP(3, 1)), LineTo(toFixedP(6, 1)), LineTo(toFixedP(6, 5)), Close{},
		}},
		{"M0 0 1 1-2-2", Path{
			MoveTo(toFixedP(0, 0)), LineTo(toFixedP(1, 1)), LineTo(toFixedP(-2, -2)),
		}},
		{"M1e1 2E1L1E-1-5e-1", Path{
			MoveTo(toFixedP(10, 20)), LineTo(toFixedP(0.1, -0.5)),
		}},
		// one C command with implicit repetition
		{"M 1 0 C 1.5 0 2 0 2.5 0 3 0 3.5 0 4 0", Path{
			MoveTo(toFixedP(1, 0)),
			CubicTo{toFixedP(1.5, 0), toFixedP(2, 0), toFixedP(2.5, 0)},
			CubicTo{toFixedP(3, 0), toFixedP(3.5, 0), toFixedP(4, 0)},
		}},
	} {
		var p Path
		if err := p.compile(test.d); err != nil {
			t.Fatalf("%q: %s", test.d, err)
		}
		diff(t, test.want, p)
	}

	for _, d := range []string{"0 0", "M 0", "M 0,0 Z 1", "M 0,0 Q 1,1 2,2", "M a,b"} {
		var p Path
		if err := p.compile(d); err == nil {
			t.Errorf("%q: expected error", d)
		}
	}
}

func TestErrorModes(t *testing.T) {
	const src = `<svg width="10" height="10"><ellipse cx="5" cy="5" rx="2" ry="3"/><foo/></svg>`
	if _, err := ReadIconStream(strings.NewReader(src), StrictErrorMode); err == nil {
		t.Error("expected error for unsupported element")
	}
	icon, err := ReadIconStream(strings.NewReader(src), IgnoreErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Bounds{X: 3, Y: 2, W: 4, H: 6}, icon.Extent(), approx)

	if _, err := ReadIconStream(strings.NewReader(""), IgnoreErrorMode); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		v    string
		want color.Color
	}{
		{"none", nil},
		{"#BC1E46", color.NRGBA{0xBC, 0x1E, 0x46, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 0xff}},
		{"Magenta", color.RGBA{0xff, 0, 0xff, 0xff}},
	} {
		got, err := parseSVGColor(test.v)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, test.want, got)
	}
	for _, v := range []string{"#12", "#zzzzzz", "rgb(1,2)", "notacolor"} {
		if _, err := parseSVGColor(v); err == nil {
			t.Errorf("%q: expected error", v)
		}
	}
}

func TestSetTarget(t *testing.T) {
	icon := emit(t, nil, func(doc *svgwriter.Document) {})
	icon.SetTarget(0, 0, 200, 160)
	x, y := icon.Transform.Transform(50, 40)
	diff(t, [2]float64{100, 80}, [2]float64{x, y})
	diff(t, toFixedP(100, 80), icon.Transform.tr(fixed.P(50, 40)))
}
