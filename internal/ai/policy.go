package ai

import (
	"fmt"
	"strings"

	"github.com/diegok/pypong/internal/game"
)

// Command is what a controller asks its paddle to do
type Command int

const (
	Stay Command = iota
	MoveUp
	MoveDown
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	default:
		return "stay"
	}
}

// Policy selects how a controller decides
type Policy int

const (
	// Reactive follows the ball's current height while it approaches
	Reactive Policy = iota
	// Predictive follows where the ball will be when it reaches the paddle
	Predictive
)

func (p Policy) String() string {
	if p == Predictive {
		return "hard"
	}
	return "easy"
}

// ParsePolicy accepts the difficulty names "easy" and "hard"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "reactive":
		return Reactive, nil
	case "hard", "predictive":
		return Predictive, nil
	}
	return Reactive, fmt.Errorf("unknown difficulty %q (want easy or hard)", s)
}

// Decide picks a command for the paddle from the ball snapshot.
// step is the simulation step the predictor uses. When the predictive policy
// cannot produce a forecast it falls back to the reactive one.
func Decide(policy Policy, snap game.Snapshot, paddle game.Rect, step float64) Command {
	if policy == Predictive {
		y, err := Predict(snap, faceX(snap, paddle), step)
		if err == nil {
			return track(y, paddle)
		}
	}
	return reactive(snap, paddle)
}

// reactive only moves while the ball is heading for the paddle
func reactive(snap game.Snapshot, paddle game.Rect) Command {
	if !snap.HeadingToward(paddle.CenterX()) {
		return Stay
	}
	return track(snap.Y, paddle)
}

func track(y float64, paddle game.Rect) Command {
	center := paddle.Top + paddle.Height*0.5
	switch {
	case y < center:
		return MoveUp
	case y > center:
		return MoveDown
	default:
		return Stay
	}
}

// faceX is the paddle edge the ball would meet coming from its current side
func faceX(snap game.Snapshot, paddle game.Rect) float64 {
	if paddle.CenterX() >= snap.X {
		return paddle.Left
	}
	return paddle.Right()
}
