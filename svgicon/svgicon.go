// Reads back the SVG images produced by the svgwriter package.
// SVG files are parsed into an abstract representation,
// which can then be consumed by painting drivers.
// See for example pads/svgraster or pads/svgpdf .
package svgicon

import (
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unsupported elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported elements with the log package
	WarnErrorMode
	// StrictErrorMode fails on unsupported elements
	StrictErrorMode
)

// PathStyle holds the state of the SVG style
type PathStyle struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64
	FontSize                 float64

	FillerColor, LinerColor color.Color // nil disables filling or lining
}

// DefaultStyle fills in black, with full opacity and no stroke,
// as required by SVG.
var DefaultStyle = PathStyle{
	FillOpacity: 1.0,
	LineOpacity: 1.0,
	LineWidth:   1.0,
	FontSize:    16,
	FillerColor: color.NRGBA{A: 0xff},
}

// SvgPath binds a style to a path
type SvgPath struct {
	Path  Path
	Style PathStyle
}

// Text is a label anchored at (X, Y).
type Text struct {
	Label string
	X, Y  float64
	Style PathStyle
}

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Icon holds data from parsed SVGs.
// See the `Draw` methods to use it.
type Icon struct {
	ViewBox       Bounds
	Width, Height float64 // top level width and height attributes
	SVGPaths      []SvgPath
	Texts         []Text
	Transform     Matrix2D
}

// ReadIconStream reads the Icon from the given io.Reader.
// This only supports the sub-set of SVG emitted by svgwriter.
// errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*Icon, error) {
	icon := &Icon{Transform: Identity}
	cursor := &iconCursor{styleStack: []PathStyle{DefaultStyle}, icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			if err = cursor.pushStyle(se.Attr); err != nil {
				return icon, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			if se.Name.Local == "text" && cursor.text != nil {
				icon.Texts = append(icon.Texts, *cursor.text)
				cursor.text = nil
			}
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
		case xml.CharData:
			if cursor.text != nil {
				cursor.text.Label += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file.
// See ReadIconStream.
func ReadIcon(iconFile string, errMode ErrorMode) (*Icon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *Icon) SetTarget(x, y, w, h float64) {
	scaleW := w / s.ViewBox.W
	scaleH := h / s.ViewBox.H
	s.Transform = Identity.Translate(x-s.ViewBox.X, y-s.ViewBox.Y).Scale(scaleW, scaleH)
}
