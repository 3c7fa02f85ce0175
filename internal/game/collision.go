package game

// Point is a position on the playfield
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle, top-left origin with y growing downward
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r Rect) CenterX() float64 {
	return r.Left + r.Width*0.5
}

func (r Rect) CenterY() float64 {
	return r.Top + r.Height*0.5
}

// Overlaps reports whether the two rectangles share any area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Bounds describes the playfield
type Bounds struct {
	Width  float64
	Height float64
}

// Mid returns the centre of the playfield
func (b Bounds) Mid() Point {
	return Point{X: b.Width * 0.5, Y: b.Height * 0.5}
}

// Collisions records which reflection rules fired during a step
type Collisions struct {
	Left  bool
	Right bool
	Wall  bool
}

// Any returns true if at least one rule fired
func (c Collisions) Any() bool {
	return c.Left || c.Right || c.Wall
}

// Classify decides which reflections apply to the ball in its current
// position without changing it. The ball is approximated by its bounding box.
func Classify(b *Ball, left, right Rect, bounds Bounds) Collisions {
	box := b.Bounds()
	return Collisions{
		Left:  left.Overlaps(box),
		Right: right.Overlaps(box),
		Wall:  b.touchesWall(bounds),
	}
}

// Resolve runs the left paddle, right paddle and wall checks in that order,
// applying every reflection that fires. A paddle hit and a wall bounce can
// both happen in the same step. The paddle deflections are returned for
// callers that want to report them.
func Resolve(b *Ball, left, right Rect, bounds Bounds) (Collisions, []Deflection) {
	var hits Collisions
	var deflections []Deflection

	if left.Overlaps(b.Bounds()) {
		hits.Left = true
		deflections = append(deflections, b.BounceOffPaddle(left))
	}
	if right.Overlaps(b.Bounds()) {
		hits.Right = true
		deflections = append(deflections, b.BounceOffPaddle(right))
	}
	hits.Wall = b.BounceOffWall(bounds)

	return hits, deflections
}
