package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/pypong/internal/game"
)

var rightPaddle = game.Rect{Left: 1216, Top: 270, Width: 32, Height: 180} // centre y 360

func TestDecide_Reactive(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		xDir int
		want Command
	}{
		{"above centre", 100, game.DirRight, MoveUp},
		{"below centre", 500, game.DirRight, MoveDown},
		{"level with centre", 360, game.DirRight, Stay},
		{"moving away above", 100, game.DirLeft, Stay},
		{"moving away below", 500, game.DirLeft, Stay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := game.Snapshot{
				X: 640, Y: tt.y,
				VX: float64(tt.xDir) * 250,
				XDir: tt.xDir, YDir: game.DirUp,
				LowerBound: 670, UpperBound: 25,
			}
			assert.Equal(t, tt.want, Decide(Reactive, snap, rightPaddle, frame))
		})
	}
}

func TestDecide_ReactiveLeftPaddle(t *testing.T) {
	leftPaddle := game.Rect{Left: 32, Top: 270, Width: 32, Height: 180}
	snap := game.Snapshot{X: 640, Y: 100, VX: -250, XDir: game.DirLeft, LowerBound: 670, UpperBound: 25}

	assert.Equal(t, MoveUp, Decide(Reactive, snap, leftPaddle, frame))

	snap.XDir = game.DirRight
	snap.VX = 250
	assert.Equal(t, Stay, Decide(Reactive, snap, leftPaddle, frame))
}

func TestDecide_ReactiveBallBehindPaddle(t *testing.T) {
	// Past the right paddle and still moving right, nothing left to chase
	snap := game.Snapshot{
		X: 1260, Y: 100,
		VX: 250,
		XDir: game.DirRight, YDir: game.DirUp,
		LowerBound: 670, UpperBound: 25,
	}

	assert.False(t, snap.HeadingToward(rightPaddle.CenterX()))
	assert.Equal(t, Stay, Decide(Reactive, snap, rightPaddle, frame))
}

func TestDecide_PredictiveUsesForecast(t *testing.T) {
	// Ball is above the paddle centre now but will be below it on arrival
	snap := game.Snapshot{
		X: 1000, Y: 300,
		VX: 500, VY: 200,
		XDir: game.DirRight, YDir: game.DirUp,
		LowerBound: 670, UpperBound: 25,
	}

	assert.Equal(t, MoveUp, Decide(Reactive, snap, rightPaddle, frame))
	assert.Equal(t, MoveDown, Decide(Predictive, snap, rightPaddle, frame))

	predicted, err := Predict(snap, rightPaddle.Left, frame)
	require.NoError(t, err)
	assert.InDelta(t, 386.4, predicted, 1e-6)
}

func TestDecide_PredictiveIgnoresDirection(t *testing.T) {
	snap := game.Snapshot{
		X: 640, Y: 100,
		VX: -250, VY: 0,
		XDir: game.DirLeft, YDir: game.DirUp,
		LowerBound: 670, UpperBound: 25,
	}

	assert.Equal(t, Stay, Decide(Reactive, snap, rightPaddle, frame))
	assert.Equal(t, MoveUp, Decide(Predictive, snap, rightPaddle, frame))
}

func TestDecide_PredictiveFallsBackToReactive(t *testing.T) {
	snap := game.Snapshot{X: 640, Y: 100, XDir: game.DirRight, LowerBound: 670, UpperBound: 25}

	// No horizontal velocity, the predictor cannot answer
	assert.Equal(t, MoveUp, Decide(Predictive, snap, rightPaddle, frame))

	snap.XDir = game.DirLeft
	assert.Equal(t, Stay, Decide(Predictive, snap, rightPaddle, frame))

	// Invalid step, same fallback
	snap = game.Snapshot{X: 640, Y: 500, VX: 250, XDir: game.DirRight, LowerBound: 670, UpperBound: 25}
	assert.Equal(t, MoveDown, Decide(Predictive, snap, rightPaddle, 0))
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"easy", Reactive, false},
		{"hard", Predictive, false},
		{"HARD", Predictive, false},
		{" reactive ", Reactive, false},
		{"predictive", Predictive, false},
		{"medium", Reactive, true},
		{"", Reactive, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "move_up", MoveUp.String())
	assert.Equal(t, "move_down", MoveDown.String())
	assert.Equal(t, "stay", Stay.String())
	assert.Equal(t, "easy", Reactive.String())
	assert.Equal(t, "hard", Predictive.String())
}
