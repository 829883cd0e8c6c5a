package game

// Rect is an axis-aligned box with its origin at the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return other.Left() < r.Right() && r.Left() < other.Right() &&
		other.Top() < r.Bottom() && r.Top() < other.Bottom()
}

// Contains reports whether the point lies strictly inside the box
func (r Rect) Contains(x, y float64) bool {
	return r.Left() < x && r.Right() > x && r.Top() < y && r.Bottom() > y
}

// CenteredRect returns a w x h box centered on (cx, cy)
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Bounds are the playable limits of the court
type Bounds struct {
	Upper, Lower float64
	Left, Right  float64
}
