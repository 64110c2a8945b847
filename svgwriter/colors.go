package svgwriter

// A small palette with high contrast, even for color-blind readers.
const (
	None    = "none"
	White   = "#FFFFFF"
	Black   = "#000000"
	Red     = "#BC1E46"
	Blue    = "#0081CD"
	Green   = "#009246"
	Yellow  = "#FEC200"
	Magenta = "#CC33CC"
)

// Palette maps the color names to their values.
var Palette = map[string]string{
	"none":    None,
	"white":   White,
	"black":   Black,
	"red":     Red,
	"blue":    Blue,
	"green":   Green,
	"yellow":  Yellow,
	"magenta": Magenta,
}
