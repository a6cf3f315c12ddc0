package kinko

import "testing"

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 10}
	u := a.Union(b)
	want := Rect{X: 0, Y: -5, W: 15, H: 15}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Error("union does not contain its inputs")
	}
}

func TestRectUnionIdentity(t *testing.T) {
	a := Rect{X: 2, Y: 3, W: 4, H: 5}
	if a.Union(a) != a {
		t.Error("union with self changed the rect")
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(10, 20, 4, 6)
	want := Rect{X: 8, Y: 17, W: 4, H: 6}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
	if r.MaxX() != 12 || r.MaxY() != 23 {
		t.Errorf("edges = (%v, %v), want (12, 23)", r.MaxX(), r.MaxY())
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, 4))
	if p != (Point{X: 4, Y: 6}) {
		t.Errorf("Add = %+v", p)
	}
	q := Pt(5, 5).Sub(Pt(2, 3))
	if q != (Point{X: 3, Y: 2}) {
		t.Errorf("Sub = %+v", q)
	}
}
