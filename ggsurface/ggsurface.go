// Package ggsurface rasterizes kinko draw calls through gogpu/gg.
//
// The surface wraps a gg.Context: text goes through a gg/text font
// source, circles and lines through the context's path API. Use it when
// the host wants pixels (PNG export, an image/draw composition) instead
// of vector markup.
//
// Example:
//
//	src, err := text.NewFontSourceFromFile("NotoSerifJP.ttf")
//	if err != nil {
//	    return err
//	}
//	surf := ggsurface.New(600, 800, src)
//	surf.Clear(gg.White)
//	renderer.Render(surf, entries)
//	surf.SavePNG("score.png")
package ggsurface

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/kinko"
)

// Surface rasterizes draw calls into a gg.Context. Create with New.
// Not safe for concurrent use.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

// compile-time interface check
var _ kinko.Surface = (*Surface)(nil)

// New creates a raster surface of the given pixel dimensions. The font
// source renders every DrawText call; kana glyphs need a font that covers
// them (Noto Serif JP or similar). A nil source drops text silently, the
// same way a gg.Context without a font does.
func New(width, height int, source *text.FontSource) *Surface {
	return &Surface{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float64]text.Face),
	}
}

// Context returns the underlying gg drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Clear fills the whole canvas with the given color.
func (s *Surface) Clear(col gg.RGBA) {
	s.dc.ClearWithColor(col)
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// face returns a cached font face for the size.
func (s *Surface) face(size float64) text.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(size)
	s.faces[size] = f
	return f
}

// DrawText implements kinko.Surface. The font weight is not synthesized;
// the loaded face's own weight applies.
func (s *Surface) DrawText(str string, x, y float64, style kinko.TextStyle) {
	if s.source == nil || str == "" {
		return
	}
	s.dc.SetFont(s.face(style.Size))
	s.dc.SetColor(style.Color.Color())
	var ax float64
	switch style.Anchor {
	case kinko.AnchorMiddle:
		ax = 0.5
	case kinko.AnchorEnd:
		ax = 1
	}
	// ay=0 keeps y on the baseline, matching the engine contract.
	s.dc.DrawStringAnchored(str, x, y, ax, 0)
}

// DrawCircle implements kinko.Surface.
func (s *Surface) DrawCircle(x, y, r float64, fill, stroke gg.RGBA, strokeWidth float64) {
	if fill.A > 0 {
		s.dc.SetColor(fill.Color())
		s.dc.DrawCircle(x, y, r)
		_ = s.dc.Fill()
	}
	if stroke.A > 0 && strokeWidth > 0 {
		s.dc.SetColor(stroke.Color())
		s.dc.SetLineWidth(strokeWidth)
		s.dc.DrawCircle(x, y, r)
		_ = s.dc.Stroke()
	}
}

// DrawLine implements kinko.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64) {
	s.dc.SetColor(col.Color())
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	_ = s.dc.Stroke()
}
