package ai

import (
	"errors"
	"math"

	"github.com/diegok/pypong/internal/game"
)

// MaxPredictionSteps bounds the number of simulation steps a single
// prediction may take
const MaxPredictionSteps = 1_000_000

var (
	// ErrCannotPredict is returned when the ball has no horizontal motion
	ErrCannotPredict = errors.New("cannot predict: ball has no horizontal velocity")

	// ErrInvalidStep is returned for a simulation step that is not a positive finite number
	ErrInvalidStep = errors.New("prediction step must be positive and finite")

	// ErrPredictionTooLong is returned when reaching the target would take
	// more than MaxPredictionSteps steps
	ErrPredictionTooLong = errors.New("prediction exceeds step limit")
)

// Predict estimates the y coordinate of the ball at the moment it reaches
// targetX, stepping the vertical motion in increments of step seconds and
// mirroring it off the walls the same way the live ball does.
// The snapshot is a value, so the live ball is never touched.
func Predict(snap game.Snapshot, targetX, step float64) (float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0, ErrInvalidStep
	}
	if snap.VX == 0 || math.IsNaN(snap.VX) || math.IsInf(snap.VX, 0) {
		return 0, ErrCannotPredict
	}

	timeToCross := math.Abs((targetX - snap.X) / snap.VX)
	if math.IsNaN(timeToCross) || timeToCross/step > MaxPredictionSteps {
		return 0, ErrPredictionTooLong
	}

	y := snap.Y
	vy := snap.VY
	timeLeft := timeToCross

	for timeLeft > 0 {
		dt := math.Min(step, timeLeft)
		y += vy * dt

		if y >= snap.LowerBound {
			y = snap.LowerBound - (y - snap.LowerBound)
			vy = -vy
		}
		if y <= snap.UpperBound {
			y = snap.UpperBound + (snap.UpperBound - y)
			vy = -vy
		}

		timeLeft -= dt
	}

	return y, nil
}
