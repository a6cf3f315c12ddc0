package kinko

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Used for note and modifier bounding boxes.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of the given size centered at (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.MaxX(), s.MaxX()) - x,
		H: max(r.MaxY(), s.MaxY()) - y,
	}
}

// Contains reports whether s lies entirely within r.
func (r Rect) Contains(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y && s.MaxX() <= r.MaxX() && s.MaxY() <= r.MaxY()
}
