package kinko

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/kinko/pitch"
)

// Duration is a note length code.
type Duration string

const (
	DurationWhole     Duration = "w"
	DurationHalf      Duration = "h"
	DurationQuarter   Duration = "q"
	DurationEighth    Duration = "8"
	DurationSixteenth Duration = "16"
	DurationThirty    Duration = "32"
)

// Durations lists every valid duration code.
var Durations = []Duration{
	DurationWhole, DurationHalf, DurationQuarter,
	DurationEighth, DurationSixteenth, DurationThirty,
}

// Valid reports whether d is one of the six duration codes.
func (d Duration) Valid() bool {
	for _, v := range Durations {
		if d == v {
			return true
		}
	}
	return false
}

// Default font metrics for a freshly constructed note.
const (
	DefaultFontSize   = 28.0
	DefaultFontFamily = "Noto Serif JP"
)

// Note is one musical event: a notation glyph (or rest) at a position,
// with zero or more attached modifiers. Notes are built per score entry,
// positioned by the layout engine, and discarded with the render pass;
// they carry no identity beyond it.
//
// The bounding box is cached lazily and invalidated by every geometric
// mutation. Note is not safe for concurrent use; a render pass is
// single-threaded by design.
type Note struct {
	symbol   pitch.Symbol
	resolved bool
	glyph    string // kana when resolved, the raw input otherwise

	x, y       float64
	duration   Duration
	fontSize   float64
	fontWeight FontWeight
	fontFamily string
	color      gg.RGBA
	isRest     bool
	modifiers  []Modifier

	bbox      Rect
	bboxValid bool
}

// NewNote builds a note for the given symbol input. The input is resolved
// through pitch.Parse (romaji, kana, or reference pitch); when resolution
// fails the note degrades gracefully and draws the raw input string as a
// literal glyph. This is the one place symbol lookup soft-fails: the pitch
// package itself always fails loudly.
func NewNote(raw string) *Note {
	n := &Note{
		glyph:      raw,
		duration:   DurationQuarter,
		fontSize:   DefaultFontSize,
		fontWeight: WeightNormal,
		fontFamily: DefaultFontFamily,
		color:      ThemeLight.Ink,
	}
	sym, err := pitch.Parse(raw)
	if err != nil {
		Logger().Warn("unresolved symbol drawn literally",
			slog.String("input", raw))
		return n
	}
	n.symbol = sym
	n.resolved = true
	n.glyph = sym.Kana
	return n
}

// NewRest builds a rest of the given duration.
func NewRest(d Duration) *Note {
	if d == "" {
		d = DurationQuarter
	}
	return &Note{
		isRest:     true,
		duration:   d,
		fontSize:   DefaultFontSize,
		fontWeight: WeightNormal,
		fontFamily: DefaultFontFamily,
		color:      ThemeLight.Ink,
	}
}

// Symbol returns the resolved base symbol and whether resolution
// succeeded. Unresolved notes return the zero Symbol and false.
func (n *Note) Symbol() (pitch.Symbol, bool) { return n.symbol, n.resolved }

// Glyph returns the string the note draws: the kana glyph when resolved,
// the raw input otherwise.
func (n *Note) Glyph() string { return n.glyph }

// IsRest reports whether the note is a rest.
func (n *Note) IsRest() bool { return n.isRest }

// Position returns the note's assigned baseline position.
func (n *Note) Position() (x, y float64) { return n.x, n.y }

// Duration returns the note's duration code.
func (n *Note) Duration() Duration { return n.duration }

// Modifiers returns the attached modifiers in attachment order. The
// returned slice is the note's own; callers must not mutate it.
func (n *Note) Modifiers() []Modifier { return n.modifiers }

// SetPosition moves the note's baseline anchor and invalidates the cached
// bounding box.
func (n *Note) SetPosition(x, y float64) {
	n.x = x
	n.y = y
	n.bboxValid = false
}

// SetDuration sets the duration code.
func (n *Note) SetDuration(d Duration) {
	n.duration = d
}

// SetFontSize sets the glyph size and invalidates the cached bounding box.
func (n *Note) SetFontSize(size float64) {
	n.fontSize = size
	n.bboxValid = false
}

// SetFontWeight sets the glyph weight and invalidates the cached bounding
// box.
func (n *Note) SetFontWeight(w FontWeight) {
	n.fontWeight = w
	n.bboxValid = false
}

// SetFontFamily sets the font family. Family does not enter the box
// approximation, so the cache stays valid.
func (n *Note) SetFontFamily(family string) {
	n.fontFamily = family
}

// SetColor sets the paint color. Color has no geometric effect, so the
// cached bounding box stays valid.
func (n *Note) SetColor(col gg.RGBA) {
	n.color = col
}

// AddModifier appends a modifier and invalidates the cached bounding box.
func (n *Note) AddModifier(m Modifier) {
	n.modifiers = append(n.modifiers, m)
	n.bboxValid = false
}

// AddModifiers appends modifiers in order and invalidates the cached
// bounding box.
func (n *Note) AddModifiers(ms ...Modifier) {
	n.modifiers = append(n.modifiers, ms...)
	n.bboxValid = false
}

// Render draws the note and then every attached modifier, anchored at the
// note's current position, in attachment order. Rendering invalidates the
// cached bounding box; the cache's lifetime ends with the pass.
func (n *Note) Render(s Surface) {
	if n.isRest {
		radius := n.fontSize / 8
		strokeW := max(1.5, radius/1.9)
		// The circle center sits at glyph mid-height so rests align
		// visually with neighboring kana.
		s.DrawCircle(n.x, n.y-n.fontSize*0.4, radius, gg.Transparent, n.color, strokeW)
	} else if n.glyph != "" {
		s.DrawText(n.glyph, n.x, n.y, TextStyle{
			Size:   n.fontSize,
			Family: n.fontFamily,
			Color:  n.color,
			Anchor: AnchorMiddle,
			Weight: n.fontWeight,
		})
	}
	for _, m := range n.modifiers {
		m.Render(s, n.x, n.y)
	}
	n.bboxValid = false
}

// BBox returns the note's bounding box: the glyph box (width 0.8 times
// the font size, height the font size, bottom on the baseline, centered
// on x) unioned with every modifier box. The box is computed lazily and
// cached until the next mutation of position, font size, weight, or
// modifier list.
func (n *Note) BBox() Rect {
	if n.bboxValid {
		return n.bbox
	}
	w := n.fontSize * 0.8
	h := n.fontSize
	box := Rect{X: n.x - w/2, Y: n.y - h, W: w, H: h}
	for _, m := range n.modifiers {
		if m.Width() == 0 && m.Height() == 0 {
			continue
		}
		off := m.Offset()
		box = box.Union(RectAround(n.x+off.X, n.y+off.Y, m.Width(), m.Height()))
	}
	n.bbox = box
	n.bboxValid = true
	return box
}
