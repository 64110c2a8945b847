package svgwriter

import (
	"strconv"
	"strings"
)

// FormatCoord returns the string used for every coordinate, radius
// and distance: four decimals, without trailing zeros or trailing dot.
func FormatCoord(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// formatPoint returns "x,y"
func formatPoint(p Point) string {
	return FormatCoord(p.X) + "," + FormatCoord(p.Y)
}
