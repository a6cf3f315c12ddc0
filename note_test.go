package kinko

import (
	"testing"

	"github.com/gogpu/gg"
)

// testSurface captures draw calls for in-package assertions.
type testSurface struct {
	texts   []testText
	circles []testCircle
	lines   []testLine
}

type testText struct {
	s     string
	x, y  float64
	style TextStyle
}

type testCircle struct {
	x, y, r      float64
	fill, stroke gg.RGBA
	strokeWidth  float64
}

type testLine struct {
	x1, y1, x2, y2 float64
	col            gg.RGBA
	width          float64
}

func (t *testSurface) DrawText(s string, x, y float64, style TextStyle) {
	t.texts = append(t.texts, testText{s: s, x: x, y: y, style: style})
}

func (t *testSurface) DrawCircle(x, y, r float64, fill, stroke gg.RGBA, strokeWidth float64) {
	t.circles = append(t.circles, testCircle{x: x, y: y, r: r, fill: fill, stroke: stroke, strokeWidth: strokeWidth})
}

func (t *testSurface) DrawLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64) {
	t.lines = append(t.lines, testLine{x1: x1, y1: y1, x2: x2, y2: y2, col: col, width: width})
}

func TestNewNoteResolves(t *testing.T) {
	n := NewNote("ro")
	sym, ok := n.Symbol()
	if !ok {
		t.Fatal("NewNote(ro) did not resolve")
	}
	if sym.Kana != "ロ" {
		t.Errorf("resolved kana = %q, want ロ", sym.Kana)
	}
	if n.Glyph() != "ロ" {
		t.Errorf("Glyph() = %q, want ロ", n.Glyph())
	}
}

func TestNewNoteFallback(t *testing.T) {
	// Unresolvable input degrades to a literal glyph; construction
	// never fails. The pitch package alone fails hard.
	n := NewNote("〆")
	if _, ok := n.Symbol(); ok {
		t.Error("unexpected resolution for custom glyph")
	}
	if n.Glyph() != "〆" {
		t.Errorf("Glyph() = %q, want the raw input", n.Glyph())
	}

	s := &testSurface{}
	n.SetPosition(100, 200)
	n.Render(s)
	if len(s.texts) != 1 || s.texts[0].s != "〆" {
		t.Fatalf("fallback render = %+v, want one literal text", s.texts)
	}
}

func TestNoteRenderGlyph(t *testing.T) {
	n := NewNote("tsu")
	n.SetPosition(150, 80)
	n.SetFontSize(30)
	s := &testSurface{}
	n.Render(s)

	if len(s.texts) != 1 {
		t.Fatalf("got %d text calls, want 1", len(s.texts))
	}
	txt := s.texts[0]
	if txt.s != "ツ" || txt.x != 150 || txt.y != 80 {
		t.Errorf("glyph call = %+v", txt)
	}
	if txt.style.Anchor != AnchorMiddle {
		t.Errorf("glyph anchor = %v, want middle", txt.style.Anchor)
	}
	if txt.style.Size != 30 {
		t.Errorf("glyph size = %v, want 30", txt.style.Size)
	}
}

func TestRestRender(t *testing.T) {
	n := NewRest(DurationQuarter)
	n.SetFontSize(32)
	n.SetPosition(60, 100)
	s := &testSurface{}
	n.Render(s)

	if len(s.texts) != 0 {
		t.Errorf("rest drew text: %+v", s.texts)
	}
	if len(s.circles) != 1 {
		t.Fatalf("got %d circle calls, want 1", len(s.circles))
	}
	c := s.circles[0]
	if c.r != 4 { // fontSize/8
		t.Errorf("rest radius = %v, want 4", c.r)
	}
	if c.y != 100-32*0.4 {
		t.Errorf("rest center y = %v, want %v", c.y, 100-32*0.4)
	}
	if c.fill.A != 0 {
		t.Errorf("rest fill = %+v, want transparent (hollow circle)", c.fill)
	}
	if want := max(1.5, 4.0/1.9); c.strokeWidth != want {
		t.Errorf("rest stroke width = %v, want %v", c.strokeWidth, want)
	}
}

func TestRestStrokeWidthFloor(t *testing.T) {
	// Small fonts hit the 1.5 floor.
	n := NewRest(DurationEighth)
	n.SetFontSize(10)
	s := &testSurface{}
	n.Render(s)
	if len(s.circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(s.circles))
	}
	if s.circles[0].strokeWidth != 1.5 {
		t.Errorf("stroke width = %v, want 1.5", s.circles[0].strokeWidth)
	}
}

func TestModifiersRenderInAttachmentOrder(t *testing.T) {
	n := NewNote("chi")
	n.SetPosition(100, 100)
	n.AddModifiers(
		NewAlterationMark(AlterMeri, gg.Black),
		NewOctaveMark(1, gg.Black),
	)
	s := &testSurface{}
	n.Render(s)

	// Glyph first, then modifiers in attachment order.
	if len(s.texts) != 3 {
		t.Fatalf("got %d text calls, want 3", len(s.texts))
	}
	if s.texts[1].s != "メ" {
		t.Errorf("second call = %q, want the alteration glyph", s.texts[1].s)
	}
	if s.texts[2].s != "・" {
		t.Errorf("third call = %q, want the octave dot", s.texts[2].s)
	}
	if s.texts[2].x != 118 || s.texts[2].y != 78 {
		t.Errorf("octave dot at (%v, %v), want (118, 78)", s.texts[2].x, s.texts[2].y)
	}
}

func TestBBoxIdempotent(t *testing.T) {
	n := NewNote("re")
	n.SetPosition(200, 300)
	a := n.BBox()
	b := n.BBox()
	if a != b {
		t.Errorf("BBox not idempotent: %+v vs %+v", a, b)
	}
	if !n.bboxValid {
		t.Error("cache not marked valid after BBox")
	}
}

func TestBBoxGlyphApproximation(t *testing.T) {
	n := NewNote("ro")
	n.SetFontSize(20)
	n.SetPosition(100, 50)
	box := n.BBox()
	want := Rect{X: 100 - 8, Y: 50 - 20, W: 16, H: 20}
	if box != want {
		t.Errorf("BBox = %+v, want %+v", box, want)
	}
}

func TestBBoxGrowsWithModifier(t *testing.T) {
	n := NewNote("ro")
	n.SetPosition(100, 100)
	before := n.BBox()

	n.AddModifier(NewOctaveMark(2, gg.Black))
	after := n.BBox()

	if !after.Contains(before) {
		t.Errorf("post-modifier box %+v does not contain pre-modifier box %+v", after, before)
	}
	if after == before {
		t.Error("octave mark did not expand the box")
	}
	// The octave mark's box must itself be inside the union.
	off := Pt(octaveMarkOffsetX, octaveMarkOffsetY)
	markBox := RectAround(100+off.X, 100+off.Y, octaveMarkExtent, octaveMarkExtent)
	if !after.Contains(markBox) {
		t.Errorf("union %+v does not contain modifier box %+v", after, markBox)
	}
}

func TestBBoxInvalidation(t *testing.T) {
	n := NewNote("ri")
	n.SetPosition(10, 10)
	n.BBox()

	n.SetPosition(20, 10)
	if n.bboxValid {
		t.Error("SetPosition did not invalidate the cache")
	}
	moved := n.BBox()
	if moved.X != 20-moved.W/2 {
		t.Errorf("box did not follow the note: %+v", moved)
	}

	n.SetFontSize(40)
	if n.bboxValid {
		t.Error("SetFontSize did not invalidate the cache")
	}
	n.BBox()

	n.SetFontWeight(WeightBold)
	if n.bboxValid {
		t.Error("SetFontWeight did not invalidate the cache")
	}
	n.BBox()

	n.AddModifier(NewDurationDot())
	if n.bboxValid {
		t.Error("AddModifier did not invalidate the cache")
	}
}

func TestSetColorKeepsCache(t *testing.T) {
	n := NewNote("hi")
	n.SetPosition(5, 5)
	before := n.BBox()
	n.SetColor(gg.Red)
	if !n.bboxValid {
		t.Error("SetColor invalidated the cache; color has no geometric effect")
	}
	if after := n.BBox(); after != before {
		t.Errorf("box changed on SetColor: %+v vs %+v", after, before)
	}
}

func TestRenderInvalidatesCache(t *testing.T) {
	n := NewNote("u")
	n.SetPosition(30, 30)
	n.BBox()
	n.Render(&testSurface{})
	if n.bboxValid {
		t.Error("Render did not invalidate the cache")
	}
}

func TestDurationDotDoesNotGrowBox(t *testing.T) {
	n := NewNote("tsu")
	n.SetPosition(100, 100)
	before := n.BBox()
	n.AddModifier(NewDurationDot())
	if after := n.BBox(); after != before {
		t.Errorf("duration dot changed the box: %+v vs %+v", after, before)
	}
}

func TestDurationValid(t *testing.T) {
	for _, d := range Durations {
		if !d.Valid() {
			t.Errorf("%q reported invalid", d)
		}
	}
	for _, d := range []Duration{"", "x", "64", "whole"} {
		if d.Valid() {
			t.Errorf("%q reported valid", d)
		}
	}
}
