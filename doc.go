// Package kinko renders traditional Kinko-ryū shakuhachi notation as
// vector graphics.
//
// # Overview
//
// kinko takes an ordered sequence of score entries (notes, rests, and their
// decorations) and produces primitive draw calls (text, circles, lines)
// against a caller-supplied Surface. The engine owns symbol resolution,
// the note object model, modifier geometry, and the column layout; the
// host application owns score parsing, page composition, and the concrete
// drawing target.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/kinko"
//	    "github.com/gogpu/kinko/svgsurface"
//	)
//
//	entries := []kinko.Entry{
//	    {Symbol: "ro", Duration: kinko.DurationQuarter},
//	    {Symbol: "tsu", Duration: kinko.DurationEighth, Register: 1},
//	    {Rest: true, Duration: kinko.DurationQuarter},
//	}
//
//	r := kinko.NewRenderer(kinko.WithDebugLabels(true))
//	svg := svgsurface.New(600, 800)
//	r.Render(svg, entries)
//	svg.WriteTo(os.Stdout)
//
// # Pipeline
//
// One render pass is one synchronous traversal: resolve symbols through
// the pitch package, build Note values with their Modifiers attached,
// assign positions with the LayoutEngine, then render each note against
// the Surface. There is no incremental re-layout; changing display
// configuration (octave dots, theme) means running the pass again.
//
// # Architecture
//
// The library is organized into:
//   - Core: Note, Modifier variants, LayoutEngine, Renderer, Surface
//   - pitch: symbol table, MIDI conversion, extended register map
//   - score: YAML score files and validation (the reference host)
//   - Surface backends: svgsurface (vector markup), ggsurface (raster via
//     gogpu/gg), recording (typed command capture for tests and replay)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin at top-left, X
// increases right, Y increases down. Note positions are text baselines;
// columns grow downward and advance to the right.
package kinko

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
