package svgsurface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/kinko"
)

func TestTextElement(t *testing.T) {
	s := New(200, 100)
	s.DrawText("ロ", 50, 60, kinko.TextStyle{
		Size:   28,
		Family: "Noto Serif JP",
		Color:  gg.Black,
		Anchor: kinko.AnchorMiddle,
		Weight: kinko.WeightMedium,
	})
	out := s.String()
	for _, want := range []string{
		`<text x="50.00" y="60.00"`,
		`font-size="28.00"`,
		`font-family="Noto Serif JP"`,
		`font-weight="500"`,
		`text-anchor="middle"`,
		`>ロ</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextEscaping(t *testing.T) {
	s := New(100, 100)
	s.DrawText("<&>", 0, 0, kinko.TextStyle{Size: 10, Color: gg.Black})
	if !strings.Contains(s.String(), ">&lt;&amp;&gt;</text>") {
		t.Errorf("special characters not escaped:\n%s", s.String())
	}
}

func TestEmptyTextSkipped(t *testing.T) {
	s := New(100, 100)
	s.DrawText("", 0, 0, kinko.TextStyle{Size: 10})
	if s.Len() != 0 {
		t.Errorf("empty text emitted an element")
	}
}

func TestHollowCircle(t *testing.T) {
	s := New(100, 100)
	s.DrawCircle(30, 40, 3.5, gg.Transparent, gg.Black, 1.84)
	out := s.String()
	for _, want := range []string{
		`<circle cx="30.00" cy="40.00" r="3.50"`,
		`fill="none"`,
		`stroke="rgb(0,0,0)"`,
		`stroke-width="1.84"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLineElement(t *testing.T) {
	s := New(100, 100)
	s.DrawLine(1, 2, 3, 4, gg.Red, 1.2)
	if !strings.Contains(s.String(),
		`<line x1="1.00" y1="2.00" x2="3.00" y2="4.00" stroke="rgb(255,0,0)" stroke-width="1.20"/>`) {
		t.Errorf("unexpected line element:\n%s", s.String())
	}
}

func TestDocumentFrame(t *testing.T) {
	s := New(600, 800)
	out := s.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="800" viewBox="0 0 600 800">`) {
		t.Errorf("bad document start:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("bad document end:\n%s", out)
	}
}

func TestWriteTo(t *testing.T) {
	s := New(10, 10)
	s.DrawLine(0, 0, 1, 1, gg.Black, 1)
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if !bytes.Equal(buf.Bytes(), s.Bytes()) {
		t.Error("WriteTo output differs from Bytes")
	}
}

func TestFullPassDeterministic(t *testing.T) {
	entries := []kinko.Entry{
		{Symbol: "ro", Dotted: true},
		{Symbol: "tsu", Register: 1, Alteration: kinko.AlterMeri},
		{Rest: true},
	}
	r := kinko.NewRenderer()

	a := New(300, 400)
	b := New(300, 400)
	r.Render(a, entries)
	r.Render(b, entries)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical passes produced different SVG documents")
	}
}

func TestAlphaColorAttr(t *testing.T) {
	s := New(100, 100)
	s.DrawLine(0, 0, 1, 1, gg.RGBA2(1, 0, 0, 0.5), 1)
	if !strings.Contains(s.String(), `stroke="rgba(255,0,0,0.500)"`) {
		t.Errorf("alpha color not emitted as rgba():\n%s", s.String())
	}
}

func TestReset(t *testing.T) {
	s := New(100, 100)
	s.DrawLine(0, 0, 1, 1, gg.Black, 1)
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d", s.Len())
	}
	if s.Width() != 100 || s.Height() != 100 {
		t.Error("Reset changed dimensions")
	}
}
