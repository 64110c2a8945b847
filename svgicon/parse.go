package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
)

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon       *Icon
	styleStack []PathStyle
	errorMode  ErrorMode

	points []float64 // scratch buffer for number lists
	path   Path      // path of the current element
	text   *Text     // non nil inside a text element
}

func (c *iconCursor) handleError(msg string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		log.Println(msg)
	}
	return nil
}

// parseFloat accepts an optional "px" unit
func parseFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

// getPoints reads a list of numbers into c.points
func (c *iconCursor) getPoints(s string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(s) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}

// parseSVGColor returns nil for "none"
func parseSVGColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		comps := splitOnCommaOrSpace(v[4 : len(v)-1])
		if len(comps) != 3 {
			return nil, fmt.Errorf("invalid color %q", v)
		}
		var rgb [3]uint8
		for i, s := range comps {
			n, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid color %q: %s", v, err)
			}
			rgb[i] = uint8(n)
		}
		return color.NRGBA{rgb[0], rgb[1], rgb[2], 0xff}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", v)
}

func parseHexColor(v string) (color.Color, error) {
	if len(v) == 3 { // #rgb is #rrggbb
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("invalid color #%s", v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color #%s: %s", v, err)
	}
	return color.NRGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}

func (c *iconCursor) readStyleAttr(curStyle *PathStyle, k, v string) error {
	var err error
	switch k {
	case "fill":
		curStyle.FillerColor, err = parseSVGColor(v)
	case "stroke":
		curStyle.LinerColor, err = parseSVGColor(v)
	case "stroke-width":
		curStyle.LineWidth, err = parseFloat(v)
	case "font-size":
		curStyle.FontSize, err = parseFloat(v)
	case "opacity", "stroke-opacity", "fill-opacity":
		var op float64
		op, err = parseFloat(v)
		if k != "stroke-opacity" {
			curStyle.FillOpacity *= op
		}
		if k != "fill-opacity" {
			curStyle.LineOpacity *= op
		}
	}
	return err
}

// pushStyle parses the style element, and push it on the style stack.
// Note that this parses both the contents of a style attribute plus
// direct presentation attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if err := c.readStyleAttr(&curStyle, k, strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	c.styleStack = append(c.styleStack, curStyle)
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("invalid element %s: %w", se.Name.Local, err)
	}

	if len(c.path) > 0 {
		// the cursor parsed a path from the xml element
		pathCopy := append(Path{}, c.path...)
		c.icon.SVGPaths = append(c.icon.SVGPaths,
			SvgPath{Path: pathCopy, Style: c.styleStack[len(c.styleStack)-1]})
		c.path = c.path[:0]
	}
	return nil
}
