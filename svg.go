package trackplate

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a template's outline to a string of SVG path commands: a
// MoveTo to the first point, a LineTo per subsequent point (the duplicate
// closing point is skipped), and a closing Z.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(t Template, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, t, opts)
	return sb.String()
}

// WriteSVG converts a template's outline to SVG path commands and writes them
// to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, t Template, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	points := t.points
	if len(points) == 0 {
		return nil
	}
	if t.IsClosed(0) {
		// The explicit Z replaces the duplicate closing point.
		points = points[:len(points)-1]
	}
	for i, pt := range points {
		if i == 0 {
			writef("M%s,%s", format(pt.X), format(pt.Y))
		} else {
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	writef(" Z")
	return err
}
