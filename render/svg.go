package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/ericlevine/code39"
)

const (
	captionFontSize = 10
	captionHeight   = captionFontSize + 4
)

// SVG renders the plan as a standalone SVG document. Bars are shifted right
// by the quiet zone; the caption, if any, sits below them.
func SVG(p code39.Plan, opts ...Option) []byte {
	o := newOptions(opts)
	margin := o.quietZone * p.Unit
	width := p.Width + 2*margin
	height := p.Height
	if o.caption != "" {
		height += captionHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" shape-rendering="crispEdges">`+"\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="%s"/>`+"\n", num(width), num(height), attr(o.background))
	for _, r := range p.Rects {
		fmt.Fprintf(&buf, `  <rect class="bar" x="%s" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
			num(r.X+margin), num(r.Width), num(r.Height), attr(o.bar))
	}
	if o.caption != "" {
		fmt.Fprintf(&buf, `  <text x="%s" y="%s" text-anchor="middle" font-family="monospace" font-size="%d" letter-spacing="0.2em" fill="%s">`,
			num(width/2), num(p.Height+captionHeight-2), captionFontSize, attr(o.bar))
		xml.EscapeText(&buf, []byte(o.caption))
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
