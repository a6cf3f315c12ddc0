package kinko

import "github.com/gogpu/gg"

// TextAnchor controls how drawn text is aligned horizontally relative to
// its x coordinate.
type TextAnchor int

const (
	// AnchorStart places the left edge of the text at x.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on x.
	AnchorMiddle
	// AnchorEnd places the right edge of the text at x.
	AnchorEnd
)

// anchorNames maps TextAnchor values to their string representation.
var anchorNames = [...]string{
	AnchorStart:  "start",
	AnchorMiddle: "middle",
	AnchorEnd:    "end",
}

// String returns the string representation of a TextAnchor.
func (a TextAnchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "start"
}

// FontWeight is a CSS-style numeric font weight.
type FontWeight int

const (
	// WeightNormal is regular text weight (400).
	WeightNormal FontWeight = 400
	// WeightMedium is the weight used by modifier glyphs (500).
	WeightMedium FontWeight = 500
	// WeightBold is bold text weight (700).
	WeightBold FontWeight = 700
)

// TextStyle carries the font parameters of a single DrawText call.
type TextStyle struct {
	Size   float64
	Family string
	Color  gg.RGBA
	Anchor TextAnchor
	Weight FontWeight
}

// Surface is the primitive 2D drawing target the engine renders against.
// The engine is agnostic to whether the surface produces vector markup
// (svgsurface), raster pixels (ggsurface), or a command log (recording).
//
// All coordinates are in the engine's coordinate system: origin top-left,
// Y down, text positioned at its baseline. Implementations must accept any
// finite coordinates; clipping to a viewport is the host's concern.
//
// A gg.Transparent fill or stroke means that paint is absent: the rest
// glyph, for example, is a stroked circle with a transparent fill.
type Surface interface {
	// DrawText draws s with its baseline at (x, y).
	DrawText(s string, x, y float64, style TextStyle)

	// DrawCircle draws a circle of radius r centered at (x, y).
	DrawCircle(x, y, r float64, fill, stroke gg.RGBA, strokeWidth float64)

	// DrawLine draws a straight segment from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64)
}
