// Package svgsurface renders kinko draw calls as SVG vector markup.
//
// The surface accumulates <text>, <circle>, and <line> elements in call
// order and serializes them inside a fixed-size <svg> root. Output is
// deterministic: coordinates are formatted with two decimal places and
// element order is exactly draw order, so identical render passes produce
// byte-identical documents.
//
// Example:
//
//	svg := svgsurface.New(600, 800)
//	renderer.Render(svg, entries)
//	f, _ := os.Create("score.svg")
//	defer f.Close()
//	svg.WriteTo(f)
package svgsurface

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/kinko"
)

// Surface accumulates SVG elements. Create with New; the zero value has
// zero dimensions. Not safe for concurrent use.
type Surface struct {
	width    int
	height   int
	elements []string
}

// compile-time interface check
var _ kinko.Surface = (*Surface)(nil)

// New creates an SVG surface with the given pixel dimensions (the values
// of the root element's width/height and viewBox).
func New(width, height int) *Surface {
	return &Surface{
		width:    width,
		height:   height,
		elements: make([]string, 0, 64),
	}
}

// Width returns the surface width.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height.
func (s *Surface) Height() int { return s.height }

// DrawText implements kinko.Surface.
func (s *Surface) DrawText(text string, x, y float64, style kinko.TextStyle) {
	if text == "" {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" font-size="%.2f"`, x, y, style.Size)
	if style.Family != "" {
		fmt.Fprintf(&b, ` font-family=%q`, style.Family)
	}
	if style.Weight != 0 && style.Weight != kinko.WeightNormal {
		fmt.Fprintf(&b, ` font-weight="%d"`, int(style.Weight))
	}
	if style.Anchor != kinko.AnchorStart {
		fmt.Fprintf(&b, ` text-anchor="%s"`, style.Anchor)
	}
	fmt.Fprintf(&b, ` fill="%s"`, colorAttr(style.Color))
	b.WriteString(">")
	b.WriteString(escapeText(text))
	b.WriteString("</text>")
	s.elements = append(s.elements, b.String())
}

// DrawCircle implements kinko.Surface. A transparent fill or stroke emits
// "none" for that paint.
func (s *Surface) DrawCircle(x, y, r float64, fill, stroke gg.RGBA, strokeWidth float64) {
	var b strings.Builder
	fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f"`, x, y, r)
	fmt.Fprintf(&b, ` fill="%s"`, paintAttr(fill))
	if stroke.A > 0 {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%.2f"`, colorAttr(stroke), strokeWidth)
	}
	b.WriteString("/>")
	s.elements = append(s.elements, b.String())
}

// DrawLine implements kinko.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64) {
	s.elements = append(s.elements, fmt.Sprintf(
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`,
		x1, y1, x2, y2, colorAttr(col), width))
}

// Len returns the number of accumulated elements.
func (s *Surface) Len() int { return len(s.elements) }

// Reset discards accumulated elements, keeping the dimensions.
func (s *Surface) Reset() { s.elements = s.elements[:0] }

// Bytes serializes the accumulated document.
func (s *Surface) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.width, s.height, s.width, s.height)
	buf.WriteByte('\n')
	for _, el := range s.elements {
		buf.WriteString(el)
		buf.WriteByte('\n')
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// String serializes the accumulated document.
func (s *Surface) String() string { return string(s.Bytes()) }

// WriteTo serializes the document to w. It implements io.WriterTo.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// colorAttr formats a color as an SVG rgb()/rgba() attribute value.
func colorAttr(c gg.RGBA) string {
	r := int(clamp01(c.R) * 255)
	g := int(clamp01(c.G) * 255)
	b := int(clamp01(c.B) * 255)
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r, g, b, clamp01(c.A))
}

// paintAttr is colorAttr with "none" for fully transparent paint.
func paintAttr(c gg.RGBA) string {
	if c.A == 0 {
		return "none"
	}
	return colorAttr(c)
}

// escapeText escapes the XML special characters in element content.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
