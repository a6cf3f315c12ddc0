package kinko

import "log/slog"

// Entry is one score event handed to the engine by the host: a symbol (or
// rest) with its duration and decorations. The host owns parsing whatever
// notation format it supports into this form; the score package is the
// reference implementation.
type Entry struct {
	// Symbol is the pitch identifier: romaji, kana, a reference Western
	// pitch, or an arbitrary glyph string drawn literally when it
	// resolves to nothing.
	Symbol string
	// Duration is the length code (w, h, q, 8, 16, 32).
	Duration Duration
	// Register is the octave register index: 0 otsu, 1 kan, 2 daikan.
	Register int
	// Alteration is the meri/kari alteration, AlterNone when absent.
	Alteration AlterKind
	// Techniques lists technique marks in attachment order.
	Techniques []TechniqueKind
	// Dotted marks a duration dot (adds layout spacing after the note).
	Dotted bool
	// Rest marks a rest; Symbol is ignored.
	Rest bool
}

// Debug label geometry: small romaji text drawn under the note.
const (
	debugLabelOffsetY  = 14.0
	debugLabelFontSize = 8.0
)

// Renderer runs the full notation pipeline: build notes from entries,
// assign positions, render against a surface. A Renderer is cheap to
// construct and stateless between passes; re-rendering with different
// display configuration means constructing a new Renderer (or reusing
// this one) and running the whole pass again.
type Renderer struct {
	opts   rendererOptions
	layout *LayoutEngine
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		opts:   o,
		layout: NewLayoutEngine(o.layout),
	}
}

// Layout returns the renderer's layout engine.
func (r *Renderer) Layout() *LayoutEngine { return r.layout }

// Theme returns the renderer's color theme.
func (r *Renderer) Theme() Theme { return r.opts.theme }

// Build constructs positioned notes for the entries without rendering
// them. Symbol resolution failures degrade to literal glyphs inside
// NewNote; Build itself never fails.
func (r *Renderer) Build(entries []Entry) []*Note {
	notes := make([]*Note, 0, len(entries))
	for _, e := range entries {
		notes = append(notes, r.buildNote(e))
	}
	r.layout.Layout(notes)
	return notes
}

// Render runs one complete pass: build, lay out, and draw every entry
// against the surface. It returns the rendered notes so the caller can
// read positions and bounding boxes (for viewport sizing, hit testing,
// and the like).
func (r *Renderer) Render(s Surface, entries []Entry) []*Note {
	notes := r.Build(entries)
	for _, n := range notes {
		// Bounding boxes are for the caller; compute them before
		// rendering invalidates the cache.
		n.BBox()
		n.Render(s)
		if r.opts.debugLabels {
			r.renderDebugLabel(s, n)
		}
	}
	Logger().Debug("render pass complete",
		slog.Int("notes", len(notes)),
		slog.Int("columns", r.layout.ColumnCount(len(notes))))
	return notes
}

// buildNote constructs one note with its modifiers from a score entry.
func (r *Renderer) buildNote(e Entry) *Note {
	var n *Note
	if e.Rest {
		n = NewRest(e.Duration)
	} else {
		n = NewNote(e.Symbol)
		if e.Duration != "" {
			n.SetDuration(e.Duration)
		}
	}
	n.SetFontSize(r.opts.fontSize)
	n.SetFontFamily(r.opts.fontFamily)
	n.SetColor(r.opts.theme.Ink)

	if e.Alteration != AlterNone {
		n.AddModifier(NewAlterationMark(e.Alteration, r.opts.theme.Accent))
	}
	for _, t := range e.Techniques {
		n.AddModifier(NewTechniqueMark(t, r.opts.theme.Accent))
	}
	if e.Dotted {
		n.AddModifier(NewDurationDot())
	}
	if r.opts.octaveDots && e.Register > 0 && !e.Rest {
		n.AddModifier(NewOctaveMark(e.Register, r.opts.theme.Ink))
	}
	return n
}

// renderDebugLabel draws the romaji name under a resolved note.
func (r *Renderer) renderDebugLabel(s Surface, n *Note) {
	sym, ok := n.Symbol()
	if !ok {
		return
	}
	x, y := n.Position()
	s.DrawText(sym.Romaji, x, y+debugLabelOffsetY, TextStyle{
		Size:   debugLabelFontSize,
		Family: r.opts.fontFamily,
		Color:  r.opts.theme.Debug,
		Anchor: AnchorMiddle,
		Weight: WeightNormal,
	})
}
