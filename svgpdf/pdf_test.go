package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/pads/svgicon"
	"github.com/benoitkugler/pads/svgwriter"
)

func sampleDocument(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	doc := svgwriter.New(svgwriter.Pt(200, 120), &buf, nil)
	doc.Group(svgwriter.Style{"stroke": svgwriter.Black, "fill": svgwriter.None})
	doc.Rectangle(svgwriter.Pt(10, 10), svgwriter.Pt(190, 110), nil)
	doc.Polycurve([]svgwriter.Point{
		svgwriter.Pt(10, 60), svgwriter.Pt(40, 30), svgwriter.Pt(100, 90), svgwriter.Pt(160, 30), svgwriter.Pt(190, 60),
	}, nil, svgwriter.Style{"stroke": svgwriter.Blue})
	doc.Arc(svgwriter.Pt(60, 100), svgwriter.Pt(140, 100), 50, false, nil)
	doc.Ungroup()
	doc.Circle(svgwriter.Pt(100, 60), 8, svgwriter.Style{"fill": svgwriter.Red, "opacity": "0.5"})
	doc.Text("déjà vu", svgwriter.Pt(20, 30), svgwriter.Style{"font-size": "10"})
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWritePDF(t *testing.T) {
	var out bytes.Buffer
	if err := WriteSVGIconToPDF(bytes.NewReader(sampleDocument(t)), &out); err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF-")) {
		t.Errorf("invalid PDF header %q", out.Bytes()[:8])
	}
}

func TestRenderPDFFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sample.pdf")
	if err := RenderSVGIconToPDF(bytes.NewReader(sampleDocument(t)), name); err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PDF file")
	}
}

func TestPageSize(t *testing.T) {
	icon, err := svgicon.ReadIconStream(bytes.NewReader(sampleDocument(t)), svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	pdf := NewPage(icon)
	w, h := pdf.GetPageSize()
	if w != 200 || h != 120 {
		t.Errorf("expected a 200x120 page, got %gx%g", w, h)
	}
}
