package svgicon

import (
	"encoding/xml"
	"errors"
)

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"text":     textF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.icon.ViewBox = Bounds{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
		case "width":
			c.icon.Width, err = parseFloat(attr.Value)
		case "height":
			c.icon.Height, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = c.icon.Width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = c.icon.Height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

// readFloats stores the values of the given attributes into `dst`
func readFloats(attrs []xml.Attr, dst map[string]*float64) error {
	for _, attr := range attrs {
		ptr, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		v, err := parseFloat(attr.Value)
		if err != nil {
			return err
		}
		*ptr = v
	}
	return nil
}

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h float64
	err := readFloats(attrs, map[string]*float64{"x": &x, "y": &y, "width": &w, "height": &h})
	if err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}
	c.path.addRect(x, y, x+w, y+h)
	return nil
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, r, rx, ry float64
	err := readFloats(attrs, map[string]*float64{"cx": &cx, "cy": &cy, "r": &r, "rx": &rx, "ry": &ry})
	if err != nil {
		return err
	}
	if rx == 0 && ry == 0 {
		rx, ry = r, r
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	c.path.addEllipse(cx, cy, rx, ry)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	err := readFloats(attrs, map[string]*float64{"x1": &x1, "y1": &y1, "x2": &x2, "y2": &y2})
	if err != nil {
		return err
	}
	c.path.Start(toFixedP(x1, y1))
	c.path.Line(toFixedP(x2, y2))
	return nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points)%2 != 0 {
			return errors.New("polygon has odd number of points")
		}
		if len(c.points) < 4 {
			return nil
		}
		c.path.Start(toFixedP(c.points[0], c.points[1]))
		for i := 2; i < len(c.points)-1; i += 2 {
			c.path.Line(toFixedP(c.points[i], c.points[i+1]))
		}
	}
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	err := polylineF(c, attrs)
	if len(c.path) > 0 {
		c.path.Stop(true)
	}
	return err
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			if err := c.path.compile(attr.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func textF(c *iconCursor, attrs []xml.Attr) error {
	t := &Text{Style: c.styleStack[len(c.styleStack)-1]}
	err := readFloats(attrs, map[string]*float64{"x": &t.X, "y": &t.Y})
	if err != nil {
		return err
	}
	c.text = t
	return nil
}
