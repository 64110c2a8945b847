// Provides a minimal SVG emitter: shapes are written
// one after the other to an output stream, without any
// in-memory document model.
package svgwriter

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	header = `<?xml version="1.0"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"
  "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`
	namespace = "http://www.w3.org/2000/svg"
)

var (
	// ErrUnbalanced is returned by Close when some opened
	// elements were not closed, or closed twice.
	ErrUnbalanced = errors.New("svg: unclosed tags")

	// ErrShortCurve is reported when Polycurve is given
	// less than 4 points.
	ErrShortCurve = errors.New("svg: polycurve needs at least 4 points")
)

// Style maps style properties to their values.
type Style map[string]string

// Options configures a Document.
type Options struct {
	// Standalone emits the XML declaration and doctype, making
	// the output a whole file instead of a fragment.
	Standalone bool
	// Prefix, if non empty, qualifies every tag, as in "s:circle".
	Prefix string
	// Indentation is the number of spaces added before every line.
	Indentation int
}

// DefaultOptions produces a standalone file, without prefix nor indentation.
var DefaultOptions = Options{Standalone: true}

// Document writes an SVG image to a stream.
// Its methods must not be called concurrently.
type Document struct {
	w           io.Writer
	prefix      string
	indentation int
	nesting     int

	err error // first error encountered, reported by Close
}

// New starts a new SVG document, written to `w`.
// The bounding box is the rectangle between the origin
// and `bbox`. If `opts` is nil, DefaultOptions is used.
func New(bbox Point, w io.Writer, opts *Options) *Document {
	if opts == nil {
		opts = &DefaultOptions
	}
	d := &Document{w: w, indentation: opts.Indentation}
	xmlns := "xmlns"
	if opts.Prefix != "" {
		d.prefix = opts.Prefix + ":"
		xmlns += ":" + opts.Prefix
	}
	if opts.Standalone {
		d.write(header)
	}
	bw, bh := FormatCoord(bbox.X), FormatCoord(bbox.Y)
	d.Element(fmt.Sprintf(`svg width="%s" height="%s" viewBox="0 0 %s %s"
     %s="%s" version="1.1"`, bw, bh, bw, bh, xmlns, namespace), +1, false, nil)
	return d
}

// Nesting returns the number of currently open elements,
// including the root.
func (d *Document) Nesting() int { return d.nesting }

func (d *Document) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

func (d *Document) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Close ends the document. It returns an error wrapping ErrUnbalanced
// if the counts of opened and closed elements differ, joined with
// the first error met while writing, if any.
// Only counts are checked: a close before its open is accepted
// as long as the totals match.
func (d *Document) Close() error {
	d.Element("svg", -1, false, nil)
	var unbalanced error
	if d.nesting != 0 {
		unbalanced = fmt.Errorf("%w (nesting %d)", ErrUnbalanced, d.nesting)
	}
	return errors.Join(d.err, unbalanced)
}

// Element outputs one tag. `e` is the tag name, possibly followed by
// its attributes.
// `delta` distinguishes tags opening a nested section (+1), closing
// it (-1) and standing alone (0). Every +1 call must be matched by a
// -1 call.
// `unspaced` suppresses the indentation of closing tags and the
// line break after opening tags, for inline content such as text.
// The style attribute is made of `style` updated by `extra`: on a
// key collision, the value of `extra` wins.
func (d *Document) Element(e string, delta int, unspaced bool, style Style, extra ...Style) {
	if delta < 0 {
		d.nesting += delta
	}
	var b strings.Builder
	if delta >= 0 || !unspaced {
		b.WriteString(strings.Repeat(" ", max(0, d.indentation+2*d.nesting)))
	}
	b.WriteByte('<')
	if delta < 0 {
		b.WriteByte('/')
	}
	b.WriteString(d.prefix)
	b.WriteString(e)
	if s := formatStyle(style, extra); s != "" {
		b.WriteString(` style="`)
		b.WriteString(s)
		b.WriteByte('"')
	}
	if delta > 0 {
		d.nesting += delta
	} else if delta == 0 {
		b.WriteByte('/')
	}
	b.WriteByte('>')
	if delta <= 0 || !unspaced {
		b.WriteByte('\n')
	}
	d.write(b.String())
}

// formatStyle merges the styles and returns the content of the style attribute.
func formatStyle(style Style, extra []Style) string {
	merged := make(Style, len(style))
	for k, v := range style {
		merged[k] = v
	}
	for _, s := range extra {
		for k, v := range s {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return ""
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	chunks := make([]string, len(keys))
	for i, k := range keys {
		chunks[i] = k + ":" + merged[k]
	}
	return strings.Join(chunks, "; ")
}
