// Implements a PDF backend to render SVG images,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/pads/svgicon"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgicon.Driver  = Renderer{}
	_ svgicon.Drawer  = filler{}
	_ svgicon.Stroker = stroker{}
)

// Renderer draws on the current page of a PDF document.
type Renderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string // UTF-8 to the encoding of the core fonts
}

// implements the common path commands,
// shared by the filler and the stroker.
// The path is buffered, since PDF forbids changing
// the graphic state between the path construction and its painting.
type pather struct {
	pdf  *gofpdf.Fpdf
	path *svgicon.Path
}

// implements the filling operation
type filler struct {
	pather
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// NewPage returns a document with one page sized to `icon`,
// one user unit being one point.
func NewPage(icon *svgicon.Icon) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: icon.ViewBox.W, Ht: icon.ViewBox.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// WriteSVGIconToPDF parses the SVG document and writes
// a one page PDF file to `w`.
func WriteSVGIconToPDF(icon io.Reader, w io.Writer) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.WarnErrorMode)
	if err != nil {
		return err
	}
	pdf := NewPage(parsedIcon)
	parsedIcon.Draw(NewRenderer(pdf), 1)
	return pdf.Output(w)
}

// RenderSVGIconToPDF is like WriteSVGIconToPDF, but
// saves the PDF to the file `pdfFile`.
func RenderSVGIconToPDF(icon io.Reader, pdfFile string) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.WarnErrorMode)
	if err != nil {
		return err
	}
	pdf := NewPage(parsedIcon)
	parsedIcon.Draw(NewRenderer(pdf), 1)
	return pdf.OutputFileAndClose(pdfFile)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// toRGB returns the non premultiplied components and the alpha of `c`
func toRGB(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

// SetupDrawers implements svgicon.Driver
func (rd Renderer) SetupDrawers(willFill, willStroke bool) (f svgicon.Drawer, s svgicon.Stroker) {
	if willFill {
		f = filler{pather{rd.pdf, new(svgicon.Path)}}
	}
	if willStroke {
		s = stroker{pather{rd.pdf, new(svgicon.Path)}}
	}
	return f, s
}

// DrawText implements svgicon.Driver, using the Helvetica core font.
func (rd Renderer) DrawText(label string, at fixed.Point26_6, size float64, c color.Color, opacity float64) {
	r, g, b, alpha := toRGB(c)
	rd.pdf.SetFont("Helvetica", "", size)
	rd.pdf.SetTextColor(r, g, b)
	rd.pdf.SetAlpha(opacity*alpha, "Normal")
	x, y := fixedTof(at)
	rd.pdf.Text(x, y, rd.tr(label))
}

func (p pather) Clear() { *p.path = (*p.path)[:0] }

func (p pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p pather) CubeBezier(b, c, d fixed.Point26_6) { p.path.CubeBezier(b, c, d) }

func (p pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

// paint writes the buffered path followed by the painting operator `style`
func (p pather) paint(style string) {
	for _, op := range *p.path {
		switch op := op.(type) {
		case svgicon.MoveTo:
			p.pdf.MoveTo(fixedTof(fixed.Point26_6(op)))
		case svgicon.LineTo:
			p.pdf.LineTo(fixedTof(fixed.Point26_6(op)))
		case svgicon.CubicTo:
			cx0, cy0 := fixedTof(op[0])
			cx1, cy1 := fixedTof(op[1])
			x, y := fixedTof(op[2])
			p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
		case svgicon.Close:
			p.pdf.ClosePath()
		}
	}
	if len(*p.path) != 0 {
		p.pdf.DrawPath(style)
	}
}

func (f filler) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := toRGB(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (f filler) Draw() { f.paint("F") }

func (s stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := toRGB(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (s stroker) SetStrokeWidth(width fixed.Int26_6) {
	s.pdf.SetLineWidth(float64(width) / 64)
	s.pdf.SetLineCapStyle("round")
	s.pdf.SetLineJoinStyle("round")
}

func (s stroker) Draw() { s.paint("D") }
