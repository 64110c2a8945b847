// Command svgrender converts an SVG document, as written by the svgwriter
// package, to a PNG image or a PDF page.
//
//	svgrender [flags] <input.svg>
//	svgrender -demo sample.svg
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/pads/svgicon"
	"github.com/benoitkugler/pads/svgpdf"
	"github.com/benoitkugler/pads/svgraster"
	"github.com/benoitkugler/pads/svgwriter"
)

type options struct {
	input  string
	output string
	scale  float64
	white  bool
	demo   bool
	info   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("svgrender: ")

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Println(err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("svgrender", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: svgrender [flags] <input.svg>\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.output, "o", "", "Output file; the extension (.png or .pdf) selects the format")
	fs.Float64Var(&opts.scale, "scale", 1, "Scale applied to the view box for PNG output")
	fs.BoolVar(&opts.white, "white", false, "Paint a white background for PNG output")
	fs.BoolVar(&opts.demo, "demo", false, "Write a sample document to <input.svg> before rendering")
	fs.BoolVar(&opts.info, "info", false, "Print the view box and the extent of the drawing")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errors.New("missing svg path")
	}
	opts.input = fs.Arg(0)
	if opts.scale <= 0 {
		return options{}, fmt.Errorf("invalid scale %g", opts.scale)
	}
	if opts.output == "" && !opts.demo && !opts.info {
		return options{}, errors.New("nothing to do: use -o, -demo or -info")
	}
	return opts, nil
}

func run(opts options, stdout io.Writer) error {
	if opts.demo {
		if err := writeDemo(opts.input); err != nil {
			return fmt.Errorf("write demo: %w", err)
		}
	}

	content, err := os.ReadFile(opts.input)
	if err != nil {
		return err
	}

	if opts.info {
		icon, err := svgicon.ReadIconStream(bytes.NewReader(content), svgicon.WarnErrorMode)
		if err != nil {
			return fmt.Errorf("parse %s: %w", opts.input, err)
		}
		ext := icon.Extent()
		fmt.Fprintf(stdout, "view box: %g x %g\n", icon.ViewBox.W, icon.ViewBox.H)
		fmt.Fprintf(stdout, "extent: (%g, %g) %g x %g\n", ext.X, ext.Y, ext.W, ext.H)
		fmt.Fprintf(stdout, "paths: %d, texts: %d\n", len(icon.SVGPaths), len(icon.Texts))
	}

	if opts.output == "" {
		return nil
	}
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".png":
		return renderPNG(content, opts)
	case ".pdf":
		return svgpdf.RenderSVGIconToPDF(bytes.NewReader(content), opts.output)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func renderPNG(content []byte, opts options) error {
	ro := svgraster.Options{Scale: opts.scale}
	if opts.white {
		ro.Background = color.White
	}
	img, err := svgraster.RasterSVGIconToImage(bytes.NewReader(content), &ro)
	if err != nil {
		return err
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeDemo draws every shape of the svgwriter package.
func writeDemo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := demo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func demo(w io.Writer) error {
	P := svgwriter.Pt
	doc := svgwriter.New(P(240, 160), w, &svgwriter.Options{Standalone: true, Indentation: 2})

	doc.Group(svgwriter.Style{"stroke": svgwriter.Black, "stroke-width": "1.5", "fill": svgwriter.None})
	doc.Rectangle(P(5, 5), P(235, 155), nil)
	doc.Segment(P(5, 80), P(235, 80), svgwriter.Style{"stroke": svgwriter.Yellow})
	doc.Polygon([]svgwriter.Point{P(20, 20), P(60, 20), P(40, 60)}, svgwriter.Style{"fill": svgwriter.Green})
	doc.Polyline([]svgwriter.Point{P(80, 60), P(100, 20), P(120, 60), P(140, 20)}, nil)
	doc.Ungroup()

	curve := []svgwriter.Point{P(20, 140), P(60, 100), P(120, 130), P(180, 100), P(220, 140)}
	doc.Polycurve(curve, svgwriter.Style{"fill": svgwriter.None, "stroke": svgwriter.Blue, "stroke-width": "2"})
	doc.Arc(P(160, 60), P(220, 60), 30, false, svgwriter.Style{"fill": svgwriter.None, "stroke": svgwriter.Magenta})
	doc.Circle(P(190, 35), 12, svgwriter.Style{"fill": svgwriter.Red}, svgwriter.Style{"opacity": "0.8"})
	doc.Text("pads", P(20, 100), svgwriter.Style{"font-size": "14", "fill": svgwriter.Black})

	return doc.Close()
}
