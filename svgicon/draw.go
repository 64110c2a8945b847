package svgicon

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Given a parsed SVG document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
// In particular, the transformation matrix is already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Stroker interface {
	Drawer

	// SetStrokeWidth sets the line width for the current path
	SetStrokeWidth(width fixed.Int26_6)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the beginning of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Drawer, Stroker)

	// DrawText draws a label with its baseline starting at `at`.
	DrawText(label string, at fixed.Point26_6, size float64, c color.Color, opacity float64)
}

// Draw the compiled SVG icon into the driver `d`, paths first,
// then texts.
func (s *Icon) Draw(d Driver, opacity float64) {
	for _, svgp := range s.SVGPaths {
		svgp.drawTransformed(d, opacity, s.Transform)
	}
	for _, text := range s.Texts {
		if text.Style.FillerColor == nil {
			continue
		}
		scale := (s.Transform.A + s.Transform.D) / 2
		d.DrawText(text.Label, s.Transform.tr(toFixedP(text.X, text.Y)), text.Style.FontSize*scale,
			text.Style.FillerColor, text.Style.FillOpacity*opacity)
	}
}

// drawTransformed draws the compiled SvgPath into the driver while applying transform t.
func (svgp SvgPath) drawTransformed(d Driver, opacity float64, t Matrix2D) {
	filler, stroker := d.SetupDrawers(svgp.Style.FillerColor != nil, svgp.Style.LinerColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		for _, op := range svgp.Path {
			op.drawTo(filler, t)
		}
		filler.Stop(false)
		filler.SetColor(svgp.Style.FillerColor, svgp.Style.FillOpacity*opacity)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		scale := (t.A + t.D) / 2
		stroker.SetStrokeWidth(fixed.Int26_6(svgp.Style.LineWidth * scale * 64))
		for _, op := range svgp.Path {
			op.drawTo(stroker, t)
		}
		stroker.Stop(false)
		stroker.SetColor(svgp.Style.LinerColor, svgp.Style.LineOpacity*opacity)
		stroker.Draw()
	}
}
