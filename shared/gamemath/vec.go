package gamemath

// Vec2 is a 2D point or vector in screen or world space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
