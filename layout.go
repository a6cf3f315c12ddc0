package kinko

import "math"

// Layout constants. Column geometry is fixed for a pass; hosts that want
// different spacing configure a LayoutConfig, not individual notes.
const (
	DefaultColumnWidth     = 100.0
	DefaultColumnSpacing   = 35.0
	DefaultNotesPerColumn  = 10
	DefaultVerticalSpacing = 44.0
	DefaultLeftMargin      = 50.0
)

// LayoutConfig holds the column and spacing rules of one render pass.
type LayoutConfig struct {
	// ColumnWidth is the horizontal room reserved per column.
	ColumnWidth float64
	// ColumnSpacing is the gap between adjacent columns.
	ColumnSpacing float64
	// NotesPerColumn is the column capacity.
	NotesPerColumn int
	// VerticalSpacing is the baseline-to-baseline distance within a
	// column.
	VerticalSpacing float64
	// LeftMargin is the x of the first column's note centers.
	LeftMargin float64
}

// DefaultLayout returns the standard layout configuration.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ColumnWidth:     DefaultColumnWidth,
		ColumnSpacing:   DefaultColumnSpacing,
		NotesPerColumn:  DefaultNotesPerColumn,
		VerticalSpacing: DefaultVerticalSpacing,
		LeftMargin:      DefaultLeftMargin,
	}
}

// TopMargin is the y of the first baseline in every column. It is derived
// from the octave-mark geometry so kan/daikan dots on the first note stay
// inside the canvas; it is deliberately not configurable on its own.
func (c LayoutConfig) TopMargin() float64 {
	return math.Abs(octaveMarkOffsetY) + octaveMarkFontSize
}

// LayoutEngine assigns final positions to a note sequence using fixed
// column rules. It only positions; rendering is a separate, later pass
// issued by the caller once all positions are frozen.
//
// The assignment is deterministic: the same sequence and configuration
// always produce identical coordinates.
type LayoutEngine struct {
	cfg LayoutConfig
}

// NewLayoutEngine creates a layout engine with the given configuration.
func NewLayoutEngine(cfg LayoutConfig) *LayoutEngine {
	if cfg.NotesPerColumn <= 0 {
		cfg.NotesPerColumn = DefaultNotesPerColumn
	}
	return &LayoutEngine{cfg: cfg}
}

// Config returns the engine's layout configuration.
func (e *LayoutEngine) Config() LayoutConfig { return e.cfg }

// Layout assigns a position to every note in sequence order. Note i goes
// to column i/capacity, row i%capacity. Within a column, every preceding
// note that carries a duration dot pushes later rows down by the dot's
// extra spacing; the accumulator resets at each new column.
//
// Layout never fails on score length: it produces as many columns as the
// sequence needs. Fitting them onto a page is the host's concern.
func (e *LayoutEngine) Layout(notes []*Note) {
	top := e.cfg.TopMargin()
	extra := 0.0
	for i, n := range notes {
		column := i / e.cfg.NotesPerColumn
		row := i % e.cfg.NotesPerColumn
		if row == 0 {
			extra = 0
		}
		x := e.cfg.LeftMargin + float64(column)*(e.cfg.ColumnWidth+e.cfg.ColumnSpacing)
		y := top + float64(row)*e.cfg.VerticalSpacing + extra
		n.SetPosition(x, y)
		extra += noteExtraSpacing(n)
	}
}

// ColumnCount returns how many columns a sequence of n notes occupies.
func (e *LayoutEngine) ColumnCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/e.cfg.NotesPerColumn + 1
}

// noteExtraSpacing sums the extra spacing contributed by the note's
// modifiers (duration dots, in practice).
func noteExtraSpacing(n *Note) float64 {
	total := 0.0
	for _, m := range n.Modifiers() {
		if sp, ok := m.(spacer); ok {
			total += sp.ExtraSpacing()
		}
	}
	return total
}
