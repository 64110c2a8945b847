package svgicon

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure
// and the compilation of the "d" attribute.

// Operation groups the different SVG commands
type Operation interface {
	// add itself on the drawer `d`, after applying the transform `M`
	drawTo(d Drawer, M Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, M Matrix2D) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(M.tr(fixed.Point26_6(op)))
}

func (op LineTo) drawTo(d Drawer, M Matrix2D) {
	d.Line(M.tr(fixed.Point26_6(op)))
}

func (op CubicTo) drawTo(d Drawer, M Matrix2D) {
	d.CubeBezier(M.tr(op[0]), M.tr(op[1]), M.tr(op[2]))
}

func (op Close) drawTo(d Drawer, _ Matrix2D) {
	d.Stop(true)
}

// Path describes a sequence of basic SVG operations, which should not be nil
// Higher-level shapes are reduced to a path.
type Path []Operation

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			x, y := fixedTof(fixed.Point26_6(op))
			chunks[i] = fmt.Sprintf("M%g,%g", x, y)
		case LineTo:
			x, y := fixedTof(fixed.Point26_6(op))
			chunks[i] = fmt.Sprintf("L%g,%g", x, y)
		case CubicTo:
			x1, y1 := fixedTof(op[0])
			x2, y2 := fixedTof(op[1])
			x3, y3 := fixedTof(op[2])
			chunks[i] = fmt.Sprintf("C%g,%g,%g,%g,%g,%g", x1, y1, x2, y2, x3, y3)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// pathLexer splits the "d" attribute into commands and numbers
type pathLexer struct {
	src string
	pos int
}

func isPathCommand(r byte) bool {
	return strings.IndexByte("MmLlHhVvCcAaZz", r) != -1
}

func isSeparator(r byte) bool {
	return r == ' ' || r == ',' || r == '\n' || r == '\t' || r == '\r'
}

// next returns either a one letter command or a number.
func (l *pathLexer) next() (string, bool) {
	for l.pos < len(l.src) && isSeparator(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return "", false
	}
	start := l.pos
	if isPathCommand(l.src[l.pos]) {
		l.pos++
		return l.src[start:l.pos], true
	}
	l.pos++ // first char may be a sign
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		if isSeparator(r) || isPathCommand(r) || r == '-' && !isExponent(l.src[l.pos-1]) {
			break
		}
		l.pos++
	}
	return l.src[start:l.pos], true
}

func isExponent(r byte) bool { return r == 'e' || r == 'E' }

// pathState tracks the current point while compiling a path
type pathState struct {
	path       *Path
	cur, start [2]float64
	command    byte
	args       []float64
}

// number of arguments of each command
var commandArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'A': 7, 'Z': 0,
}

// compile appends the path described by the "d" attribute `d`.
func (p *Path) compile(d string) error {
	st := pathState{path: p}
	lex := pathLexer{src: d}
	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		if isPathCommand(tok[0]) {
			if len(st.args) != 0 {
				return errParamMismatch
			}
			st.command = tok[0]
			if st.command == 'Z' || st.command == 'z' {
				st.flush()
			}
			continue
		}
		if st.command == 0 {
			return fmt.Errorf("%w: path data starts with %q", errCommandUnknown, tok)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return err
		}
		st.args = append(st.args, v)
		if upper(st.command) == 'Z' {
			return errParamMismatch
		}
		if len(st.args) == commandArity[upper(st.command)] {
			st.flush()
		}
	}
	if len(st.args) != 0 {
		return errParamMismatch
	}
	return nil
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// flush emits the command with its complete argument list
func (st *pathState) flush() {
	relative := st.command != upper(st.command)
	a := st.args
	var dx, dy float64
	if relative {
		dx, dy = st.cur[0], st.cur[1]
	}
	switch upper(st.command) {
	case 'M':
		st.cur = [2]float64{a[0] + dx, a[1] + dy}
		st.start = st.cur
		st.path.Start(toFixedP(st.cur[0], st.cur[1]))
		// subsequent pairs are implicit line commands
		if relative {
			st.command = 'l'
		} else {
			st.command = 'L'
		}
	case 'L':
		st.cur = [2]float64{a[0] + dx, a[1] + dy}
		st.path.Line(toFixedP(st.cur[0], st.cur[1]))
	case 'H':
		st.cur[0] = a[0] + dx
		st.path.Line(toFixedP(st.cur[0], st.cur[1]))
	case 'V':
		if relative {
			st.cur[1] += a[0]
		} else {
			st.cur[1] = a[0]
		}
		st.path.Line(toFixedP(st.cur[0], st.cur[1]))
	case 'C':
		st.path.CubeBezier(toFixedP(a[0]+dx, a[1]+dy), toFixedP(a[2]+dx, a[3]+dy), toFixedP(a[4]+dx, a[5]+dy))
		st.cur = [2]float64{a[4] + dx, a[5] + dy}
	case 'A':
		end := [2]float64{a[5] + dx, a[6] + dy}
		st.path.addArc(st.cur, a[0], a[1], a[2], a[3] != 0, a[4] != 0, end)
		st.cur = end
	case 'Z':
		st.path.Stop(true)
		st.cur = st.start
	}
	st.args = st.args[:0]
}
