package ggsurface

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/kinko"
)

func TestNewDimensions(t *testing.T) {
	s := New(120, 80, nil)
	if s.Context().Width() != 120 || s.Context().Height() != 80 {
		t.Errorf("context size = %dx%d, want 120x80",
			s.Context().Width(), s.Context().Height())
	}
	b := s.Image().Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size = %dx%d, want 120x80", b.Dx(), b.Dy())
	}
}

func TestDrawTextWithoutFontIsNoop(t *testing.T) {
	// A nil font source drops text the same way a gg.Context without a
	// font does; shapes still draw.
	s := New(50, 50, nil)
	s.DrawText("ロ", 25, 25, kinko.TextStyle{Size: 28, Color: gg.Black})
}

func TestShapesRender(t *testing.T) {
	s := New(50, 50, nil)
	s.Clear(gg.White)
	s.DrawCircle(25, 25, 10, gg.Red, gg.Transparent, 0)
	s.DrawLine(0, 0, 49, 49, gg.Black, 2)
	if s.Image() == nil {
		t.Fatal("no image after drawing")
	}
}

func TestFullPassAgainstRasterBackend(t *testing.T) {
	// Text is dropped without a font; the pass itself must still run.
	s := New(300, 500, nil)
	s.Clear(gg.White)
	notes := kinko.NewRenderer().Render(s, []kinko.Entry{
		{Symbol: "ro"},
		{Rest: true},
		{Symbol: "re", Techniques: []kinko.TechniqueKind{kinko.TechniqueYuri}},
	})
	if len(notes) != 3 {
		t.Fatalf("rendered %d notes, want 3", len(notes))
	}
}
