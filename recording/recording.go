// Package recording provides a Surface that records draw operations.
//
// Instead of producing markup or pixels, the recording surface captures
// every draw call as a typed command struct. Tests assert on the commands
// directly, and a recording can be replayed onto any other Surface.
//
// Typed command structs are deliberately preferred over a serialized
// format: a render pass here is small (one command per glyph or mark) and
// inspectability is worth more than compactness.
//
// Example:
//
//	rec := recording.New()
//	renderer.Render(rec, entries)
//	for _, c := range rec.Texts() {
//	    fmt.Println(c.Text, c.X, c.Y)
//	}
//	rec.Playback(svg) // replay onto a real backend
package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/kinko"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdText is a DrawText call.
	CmdText CommandType = iota
	// CmdCircle is a DrawCircle call.
	CmdCircle
	// CmdLine is a DrawLine call.
	CmdLine
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdText:   "Text",
	CmdCircle: "Circle",
	CmdLine:   "Line",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// TextCommand records one DrawText call.
type TextCommand struct {
	Text  string
	X, Y  float64
	Style kinko.TextStyle
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// CircleCommand records one DrawCircle call.
type CircleCommand struct {
	X, Y, R     float64
	Fill        gg.RGBA
	Stroke      gg.RGBA
	StrokeWidth float64
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// LineCommand records one DrawLine call.
type LineCommand struct {
	X1, Y1, X2, Y2 float64
	Color          gg.RGBA
	Width          float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// Surface records draw operations as commands in call order.
// The zero value is not usable; create with New. Not safe for concurrent
// use (a render pass is single-threaded).
type Surface struct {
	commands []Command
}

// compile-time interface check
var _ kinko.Surface = (*Surface)(nil)

// New creates an empty recording surface.
func New() *Surface {
	return &Surface{commands: make([]Command, 0, 64)}
}

// DrawText implements kinko.Surface.
func (s *Surface) DrawText(text string, x, y float64, style kinko.TextStyle) {
	s.commands = append(s.commands, TextCommand{Text: text, X: x, Y: y, Style: style})
}

// DrawCircle implements kinko.Surface.
func (s *Surface) DrawCircle(x, y, r float64, fill, stroke gg.RGBA, strokeWidth float64) {
	s.commands = append(s.commands, CircleCommand{
		X: x, Y: y, R: r,
		Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth,
	})
}

// DrawLine implements kinko.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64) {
	s.commands = append(s.commands, LineCommand{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Color: col, Width: width,
	})
}

// Commands returns the recorded commands in call order. The returned
// slice is the surface's own; callers must not mutate it.
func (s *Surface) Commands() []Command { return s.commands }

// Len returns the number of recorded commands.
func (s *Surface) Len() int { return len(s.commands) }

// Reset discards all recorded commands, keeping allocated capacity.
func (s *Surface) Reset() { s.commands = s.commands[:0] }

// Texts returns the recorded text commands in call order.
func (s *Surface) Texts() []TextCommand {
	var out []TextCommand
	for _, c := range s.commands {
		if t, ok := c.(TextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Circles returns the recorded circle commands in call order.
func (s *Surface) Circles() []CircleCommand {
	var out []CircleCommand
	for _, c := range s.commands {
		if t, ok := c.(CircleCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Lines returns the recorded line commands in call order.
func (s *Surface) Lines() []LineCommand {
	var out []LineCommand
	for _, c := range s.commands {
		if t, ok := c.(LineCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Playback replays every recorded command onto another surface in the
// original call order.
func (s *Surface) Playback(target kinko.Surface) {
	for _, c := range s.commands {
		switch cmd := c.(type) {
		case TextCommand:
			target.DrawText(cmd.Text, cmd.X, cmd.Y, cmd.Style)
		case CircleCommand:
			target.DrawCircle(cmd.X, cmd.Y, cmd.R, cmd.Fill, cmd.Stroke, cmd.StrokeWidth)
		case LineCommand:
			target.DrawLine(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.Color, cmd.Width)
		}
	}
}
