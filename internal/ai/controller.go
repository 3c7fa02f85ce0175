package ai

import "github.com/diegok/pypong/internal/game"

// Controller drives one paddle of a match
type Controller struct {
	Side   game.Side
	Policy Policy
}

func NewController(side game.Side, policy Policy) *Controller {
	return &Controller{Side: side, Policy: policy}
}

// Step decides a command from the current match state and applies it to
// the controller's paddle. The decision uses a fresh snapshot, so the
// predictor never sees a half-updated ball.
func (c *Controller) Step(m *game.Match, dt float64) Command {
	paddle := m.Paddle(c.Side)
	cmd := Decide(c.Policy, m.Snapshot(), paddle.Rect, dt)
	switch cmd {
	case MoveUp:
		paddle.MoveUp(dt)
	case MoveDown:
		paddle.MoveDown(dt)
	}
	return cmd
}
