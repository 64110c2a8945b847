// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/benoitkugler/pads/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into an RGBA image.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// Options configures the rasterization.
type Options struct {
	// Scale is applied to the view box to obtain the image size.
	// Zero means 1.
	Scale float64
	// Background is painted before the icon. Nil means transparent.
	Background color.Color
}

// NewRenderer returns a renderer painting into `img`.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
	}
}

// RasterSVGIconToImage parses the SVG document and renders it
// into a new image. `opts` may be nil.
func RasterSVGIconToImage(icon io.Reader, opts *Options) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	return RasterIcon(parsedIcon, opts), nil
}

// RasterIcon renders an already parsed icon.
func RasterIcon(icon *svgicon.Icon, opts *Options) *image.RGBA {
	scale := 1.
	var background color.Color
	if opts != nil {
		if opts.Scale > 0 {
			scale = opts.Scale
		}
		background = opts.Background
	}
	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	icon.SetTarget(0, 0, icon.ViewBox.W*scale, icon.ViewBox.H*scale)
	icon.Draw(NewRenderer(img), 1.0)
	return img
}

// SetupDrawers implements svgicon.Driver
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgicon.Drawer, s svgicon.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// DrawText implements svgicon.Driver, with a fixed size bitmap font.
func (rd *Renderer) DrawText(label string, at fixed.Point26_6, _ float64, c color.Color, opacity float64) {
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(rasterx.ApplyOpacity(c, opacity)),
		Face: basicfont.Face7x13,
		Dot:  at,
	}
	d.DrawString(label)
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetStrokeWidth(width fixed.Int26_6) {
	s.Dasher.SetStroke(width, 4*64, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
}
