package game

// Snapshot is a point-in-time copy of the ball's kinematics together with
// the wall thresholds. It holds no references to live state.
type Snapshot struct {
	X, Y       float64
	VX, VY     float64 // units per second, sign included
	XDir, YDir int

	// LowerBound is the bottom wall threshold (larger y), UpperBound the top one
	LowerBound float64
	UpperBound float64
}

// HeadingToward reports whether the ball is moving toward x
func (s Snapshot) HeadingToward(x float64) bool {
	return (x-s.X)*float64(s.XDir) > 0
}
