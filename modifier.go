package kinko

import (
	"strings"

	"github.com/gogpu/gg"
)

// Modifier is a glyph decoration attached to a note: octave mark,
// alteration mark, technique mark, or duration dot. A modifier draws
// itself relative to an anchor point (the note position) and exposes its
// fixed geometry for bounding-box composition.
//
// Geometry is fixed per variant, never per instance: two modifiers of the
// same variant at different notes occupy identical relative offsets. The
// geometry accessors are callable before any Render call and never mutate
// shared state.
type Modifier interface {
	// Render draws the modifier anchored at (x, y).
	Render(s Surface, x, y float64)

	// Offset returns the modifier's center offset from the anchor.
	Offset() Point

	// Width returns the fixed width of the modifier's box.
	Width() float64

	// Height returns the fixed height of the modifier's box.
	Height() float64
}

// spacer is implemented by modifiers that push subsequent notes in the
// same column further down. The layout engine detects it by interface,
// the way rendering backends are probed for optional capabilities.
type spacer interface {
	ExtraSpacing() float64
}

// ---------------------------------------------------------------------------
// Octave mark
// ---------------------------------------------------------------------------

// Octave mark geometry, shared by every instance. The layout engine's top
// margin is derived from these; see LayoutConfig.TopMargin.
const (
	octaveMarkOffsetX  = 18.0
	octaveMarkOffsetY  = -22.0
	octaveMarkFontSize = 12.0
	octaveMarkExtent   = 12.0
)

// OctaveMark marks the kan or daikan register with dots above-right of the
// glyph: one dot for kan, two for daikan. Otsu notes carry no mark.
type OctaveMark struct {
	register int
	color    gg.RGBA
}

// NewOctaveMark creates an octave mark for the given register (1 = kan,
// 2 = daikan) in the given color.
func NewOctaveMark(register int, col gg.RGBA) *OctaveMark {
	return &OctaveMark{register: register, color: col}
}

// Register returns the register the mark denotes.
func (m *OctaveMark) Register() int { return m.register }

// Render draws the register dots above-right of the anchor.
func (m *OctaveMark) Render(s Surface, x, y float64) {
	n := m.register
	if n < 1 {
		return
	}
	if n > 2 {
		n = 2
	}
	s.DrawText(strings.Repeat("・", n), x+octaveMarkOffsetX, y+octaveMarkOffsetY, TextStyle{
		Size:   octaveMarkFontSize,
		Color:  m.color,
		Anchor: AnchorMiddle,
		Weight: WeightMedium,
	})
}

// Offset returns the fixed octave-mark offset.
func (m *OctaveMark) Offset() Point { return Pt(octaveMarkOffsetX, octaveMarkOffsetY) }

// Width returns the fixed octave-mark box width.
func (m *OctaveMark) Width() float64 { return octaveMarkExtent }

// Height returns the fixed octave-mark box height.
func (m *OctaveMark) Height() float64 { return octaveMarkExtent }

// ---------------------------------------------------------------------------
// Alteration mark
// ---------------------------------------------------------------------------

// AlterKind identifies a pitch alteration technique.
type AlterKind int

const (
	// AlterNone marks an unaltered pitch; no mark is drawn.
	AlterNone AlterKind = iota
	// AlterMeri lowers the pitch one semitone (メ).
	AlterMeri
	// AlterChuMeri lowers the pitch a quarter tone (中).
	AlterChuMeri
	// AlterDaiMeri lowers the pitch two semitones (大).
	AlterDaiMeri
	// AlterKari raises the pitch (カ).
	AlterKari
)

// alterGlyphs maps AlterKind to the katakana/kanji glyph drawn beside the
// note.
var alterGlyphs = [...]string{
	AlterNone:    "",
	AlterMeri:    "メ",
	AlterChuMeri: "中",
	AlterDaiMeri: "大",
	AlterKari:    "カ",
}

// alterNames maps AlterKind to its romanized name.
var alterNames = [...]string{
	AlterNone:    "none",
	AlterMeri:    "meri",
	AlterChuMeri: "chu-meri",
	AlterDaiMeri: "dai-meri",
	AlterKari:    "kari",
}

// String returns the romanized alteration name.
func (k AlterKind) String() string {
	if int(k) < len(alterNames) {
		return alterNames[k]
	}
	return "unknown"
}

// Alteration mark geometry. Meri-family glyphs sit left of the note, the
// kari glyph right, both slightly above the baseline.
const (
	alterMarkOffsetY   = -6.0
	alterMarkOffsetXIn = -16.0 // meri, chu-meri, dai-meri
	alterMarkOffsetXUp = 16.0  // kari
	alterMarkFontSize  = 14.0
	alterMarkExtent    = 14.0
)

// AlterationMark draws the small meri/kari glyph beside a note.
type AlterationMark struct {
	kind  AlterKind
	color gg.RGBA
}

// NewAlterationMark creates an alteration mark of the given kind and
// color.
func NewAlterationMark(kind AlterKind, col gg.RGBA) *AlterationMark {
	return &AlterationMark{kind: kind, color: col}
}

// Kind returns the alteration kind.
func (m *AlterationMark) Kind() AlterKind { return m.kind }

// Render draws the alteration glyph beside the anchor.
func (m *AlterationMark) Render(s Surface, x, y float64) {
	if m.kind == AlterNone {
		return
	}
	off := m.Offset()
	s.DrawText(alterGlyphs[m.kind], x+off.X, y+off.Y, TextStyle{
		Size:   alterMarkFontSize,
		Color:  m.color,
		Anchor: AnchorMiddle,
		Weight: WeightMedium,
	})
}

// Offset returns the fixed per-kind offset: meri-family left, kari right.
func (m *AlterationMark) Offset() Point {
	if m.kind == AlterKari {
		return Pt(alterMarkOffsetXUp, alterMarkOffsetY)
	}
	return Pt(alterMarkOffsetXIn, alterMarkOffsetY)
}

// Width returns the fixed alteration-mark box width.
func (m *AlterationMark) Width() float64 { return alterMarkExtent }

// Height returns the fixed alteration-mark box height.
func (m *AlterationMark) Height() float64 { return alterMarkExtent }

// ---------------------------------------------------------------------------
// Technique mark
// ---------------------------------------------------------------------------

// TechniqueKind identifies a playing-technique mark.
type TechniqueKind int

const (
	// TechniqueYuri is vibrato, drawn as a small zigzag wave.
	TechniqueYuri TechniqueKind = iota
	// TechniqueSuri is a pitch slide, drawn as a diagonal stroke.
	TechniqueSuri
	// TechniqueAtari is a re-attack, drawn as a small glyph.
	TechniqueAtari
)

// techniqueNames maps TechniqueKind to its romanized name.
var techniqueNames = [...]string{
	TechniqueYuri:  "yuri",
	TechniqueSuri:  "suri",
	TechniqueAtari: "atari",
}

// String returns the romanized technique name.
func (k TechniqueKind) String() string {
	if int(k) < len(techniqueNames) {
		return techniqueNames[k]
	}
	return "unknown"
}

// Technique mark geometry. Marks sit right of the glyph at baseline
// height; the wave spans the full box width.
const (
	techniqueMarkOffsetX  = 20.0
	techniqueMarkOffsetY  = -8.0
	techniqueMarkWidth    = 16.0
	techniqueMarkHeight   = 10.0
	techniqueMarkLineW    = 1.2
	techniqueAtariSize    = 10.0
	techniqueYuriSegments = 4
)

// TechniqueMark draws a vibrato, slide, or attack mark beside a note.
type TechniqueMark struct {
	kind  TechniqueKind
	color gg.RGBA
}

// NewTechniqueMark creates a technique mark of the given kind and color.
func NewTechniqueMark(kind TechniqueKind, col gg.RGBA) *TechniqueMark {
	return &TechniqueMark{kind: kind, color: col}
}

// Kind returns the technique kind.
func (m *TechniqueMark) Kind() TechniqueKind { return m.kind }

// Render draws the technique mark beside the anchor.
func (m *TechniqueMark) Render(s Surface, x, y float64) {
	cx := x + techniqueMarkOffsetX
	cy := y + techniqueMarkOffsetY
	switch m.kind {
	case TechniqueYuri:
		// Zigzag wave across the box, alternating above and below the
		// center line.
		left := cx - techniqueMarkWidth/2
		step := techniqueMarkWidth / techniqueYuriSegments
		amp := techniqueMarkHeight / 2
		px, py := left, cy
		for i := 1; i <= techniqueYuriSegments; i++ {
			nx := left + float64(i)*step
			ny := cy + amp
			if i%2 == 0 {
				ny = cy - amp
			}
			s.DrawLine(px, py, nx, ny, m.color, techniqueMarkLineW)
			px, py = nx, ny
		}
	case TechniqueSuri:
		s.DrawLine(cx-techniqueMarkWidth/2, cy+techniqueMarkHeight/2,
			cx+techniqueMarkWidth/2, cy-techniqueMarkHeight/2,
			m.color, techniqueMarkLineW)
	case TechniqueAtari:
		s.DrawText("ツ", cx, cy+techniqueMarkHeight/2, TextStyle{
			Size:   techniqueAtariSize,
			Color:  m.color,
			Anchor: AnchorMiddle,
			Weight: WeightNormal,
		})
	}
}

// Offset returns the fixed technique-mark offset.
func (m *TechniqueMark) Offset() Point { return Pt(techniqueMarkOffsetX, techniqueMarkOffsetY) }

// Width returns the fixed technique-mark box width.
func (m *TechniqueMark) Width() float64 { return techniqueMarkWidth }

// Height returns the fixed technique-mark box height.
func (m *TechniqueMark) Height() float64 { return techniqueMarkHeight }

// ---------------------------------------------------------------------------
// Duration dot
// ---------------------------------------------------------------------------

// DotExtraSpacing is the vertical room a duration dot adds after its note
// within a column.
const DotExtraSpacing = 12.0

// DurationDot lengthens a note by half its value. It has no visual of its
// own and zero geometry; its whole effect is the extra vertical spacing
// the layout engine inserts after the note that carries it.
type DurationDot struct{}

// NewDurationDot creates a duration dot.
func NewDurationDot() *DurationDot { return &DurationDot{} }

// Render draws nothing; the dot only affects layout.
func (*DurationDot) Render(Surface, float64, float64) {}

// Offset returns the zero offset.
func (*DurationDot) Offset() Point { return Point{} }

// Width returns zero.
func (*DurationDot) Width() float64 { return 0 }

// Height returns zero.
func (*DurationDot) Height() float64 { return 0 }

// ExtraSpacing returns the vertical spacing the dot contributes to
// subsequent notes in its column.
func (*DurationDot) ExtraSpacing() float64 { return DotExtraSpacing }
