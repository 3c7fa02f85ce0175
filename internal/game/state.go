package game

import (
	"fmt"
	"math/rand"
)

// Constants for match state management
const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultPointsToWin = 3
)

// Events reports what happened during one tick
type Events struct {
	Collisions
	Deflections []Deflection
	Scored      bool
	Scorer      Side
}

// Match owns the live state of a single match. Nothing in it is global;
// callers pass the match around explicitly.
type Match struct {
	Bounds      Bounds
	Ball        *Ball
	Left        *Paddle
	Right       *Paddle
	LeftScore   int
	RightScore  int
	PointsToWin int
	Tick        int

	rng *rand.Rand
}

// NewMatch creates a match with the ball and paddles centred.
// A nil rng uses the global source for serves.
func NewMatch(bounds Bounds, pointsToWin int, params BallParams, rng *rand.Rand) *Match {
	mid := bounds.Mid()
	return &Match{
		Bounds:      bounds,
		Ball:        NewBall(mid.X, mid.Y, params),
		Left:        NewPaddle(SideLeft, bounds),
		Right:       NewPaddle(SideRight, bounds),
		PointsToWin: pointsToWin,
		rng:         rng,
	}
}

// Paddle returns the paddle defending the given side
func (m *Match) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return m.Left
	}
	return m.Right
}

// Snapshot exports the ball state for prediction
func (m *Match) Snapshot() Snapshot {
	return m.Ball.Snapshot(m.Bounds)
}

// Update runs one tick: paddle and wall reflections first, then the ball
// moves, then the score check.
func (m *Match) Update(dt float64) (Events, error) {
	var ev Events
	// A bad step must not reflect the ball either
	if !validTimeStep(dt) {
		return ev, fmt.Errorf("tick %d: %w", m.Tick+1, ErrInvalidTimeStep)
	}
	m.Tick++

	ev.Collisions, ev.Deflections = Resolve(m.Ball, m.Left.Rect, m.Right.Rect, m.Bounds)

	if err := m.Ball.Advance(dt); err != nil {
		return ev, fmt.Errorf("advance ball: %w", err)
	}

	ev.Scorer, ev.Scored = m.CheckScore()
	return ev, nil
}

// ClampPaddles keeps both paddles inside the playfield
func (m *Match) ClampPaddles() {
	m.Left.Clamp(m.Bounds)
	m.Right.Clamp(m.Bounds)
}

// CheckScore awards a point when the ball leaves either end of the playfield
// and resets ball and paddles for the next serve
func (m *Match) CheckScore() (Side, bool) {
	box := m.Ball.Bounds()

	// Ball reached the right edge - left scores
	if box.Left >= m.Bounds.Width-box.Width {
		m.LeftScore++
		m.resetRally()
		return SideLeft, true
	}

	// Ball reached the left edge - right scores
	if box.Left <= 0 {
		m.RightScore++
		m.resetRally()
		return SideRight, true
	}
	return SideLeft, false
}

func (m *Match) resetRally() {
	m.Ball.Reset(m.Bounds.Mid(), m.rng)
	m.Left.Reset(m.Bounds)
	m.Right.Reset(m.Bounds)
}

// IsGameOver returns true if either side has won
func (m *Match) IsGameOver() bool {
	return m.LeftScore >= m.PointsToWin || m.RightScore >= m.PointsToWin
}

// Winner returns the winning side
func (m *Match) Winner() Side {
	if m.LeftScore >= m.PointsToWin {
		return SideLeft
	}
	return SideRight
}
