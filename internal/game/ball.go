package game

import (
	"errors"
	"math"
	"math/rand"
)

const (
	DefaultBallRadius         = 25.0
	DefaultMaxSpeedX          = 500.0
	DefaultMaxSpeedY          = DefaultMaxSpeedX / 5
	DefaultMaxDeflectionAngle = 30.0 // degrees

	InitialSpeedScale = 0.5
	MaxSpeedScale     = 1.0
	SpeedIncrement    = 1.05 // 5% speed increase per paddle hit
)

// Direction multipliers. Vertical names follow the ball's own convention:
// DirUp adds to Y.
const (
	DirLeft  = -1
	DirRight = 1
	DirDown  = -1
	DirUp    = 1
)

// ErrInvalidTimeStep is returned when a time step is negative or not finite
var ErrInvalidTimeStep = errors.New("invalid time step")

// BallParams tunes a ball instance
type BallParams struct {
	Radius             float64
	MaxSpeedX          float64
	MaxSpeedY          float64
	MaxDeflectionAngle float64
	SpeedScaling       bool // speed grows on every paddle hit
}

// DefaultBallParams returns the standard tuning with speed scaling enabled
func DefaultBallParams() BallParams {
	return BallParams{
		Radius:             DefaultBallRadius,
		MaxSpeedX:          DefaultMaxSpeedX,
		MaxSpeedY:          DefaultMaxSpeedY,
		MaxDeflectionAngle: DefaultMaxDeflectionAngle,
		SpeedScaling:       true,
	}
}

// Ball is the moving point of a match.
// Angle is kept in degrees and is fed to math.Sin as is; the predictor in
// package ai relies on the same convention.
type Ball struct {
	X, Y       float64
	XDir, YDir int
	Angle      float64
	SpeedScale float64
	BallParams
}

// Deflection describes how a paddle hit was resolved
type Deflection struct {
	Offset     float64 // raw offset from the paddle centre, in paddle heights
	Normalized float64 // rounded, doubled and clamped to [-1, 1]
	Angle      float64
}

func NewBall(x, y float64, params BallParams) *Ball {
	b := &Ball{
		X:          x,
		Y:          y,
		XDir:       DirLeft,
		YDir:       DirUp,
		BallParams: params,
	}
	b.SpeedScale = b.initialSpeedScale()
	return b
}

func (b *Ball) initialSpeedScale() float64 {
	if b.SpeedScaling {
		return InitialSpeedScale
	}
	return MaxSpeedScale
}

// Extent is the side of the ball's bounding box
func (b *Ball) Extent() float64 {
	return b.Radius * 2
}

// Bounds returns the bounding box used for collision tests
func (b *Ball) Bounds() Rect {
	return Rect{
		Left:   b.X - b.Radius,
		Top:    b.Y - b.Radius,
		Width:  b.Extent(),
		Height: b.Extent(),
	}
}

// Velocity returns the per-axis velocity in units per second
func (b *Ball) Velocity() (vx, vy float64) {
	vx = float64(b.XDir) * b.MaxSpeedX * b.SpeedScale
	vy = float64(b.YDir) * b.MaxSpeedY * b.SpeedScale * math.Abs(math.Sin(b.Angle))
	return vx, vy
}

// Advance moves the ball by dt seconds along its current heading
func (b *Ball) Advance(dt float64) error {
	if !validTimeStep(dt) {
		return ErrInvalidTimeStep
	}
	vx, vy := b.Velocity()
	b.X += vx * dt
	b.Y += vy * dt
	return nil
}

// BounceOffPaddle reverses horizontal direction and sets the deflection
// angle from where on the paddle the ball hit.
// Hits above the centre send the ball up, the centre itself and below send it down.
func (b *Ball) BounceOffPaddle(paddle Rect) Deflection {
	var d Deflection
	if paddle.Height > 0 && !math.IsInf(paddle.Height, 0) {
		d.Offset = (paddle.Top - (b.Y - paddle.Height*0.5)) / paddle.Height
		d.Normalized = 2 * roundTo(d.Offset, 2)
	}
	if math.IsNaN(d.Normalized) {
		d.Normalized = 0
	}
	if d.Normalized > 1 {
		d.Normalized = 1
	}
	if d.Normalized < -1 {
		d.Normalized = -1
	}

	if d.Normalized < 0 {
		b.YDir = DirUp
	} else {
		b.YDir = DirDown
	}

	d.Angle = d.Normalized * b.MaxDeflectionAngle
	b.Angle = d.Angle
	b.XDir = -b.XDir

	if b.SpeedScaling {
		b.SpeedScale = math.Min(b.SpeedScale*SpeedIncrement, MaxSpeedScale)
	}
	return d
}

// BounceOffWall reverses vertical direction when the ball reaches the top or
// bottom of the playfield. Returns true if it bounced.
func (b *Ball) BounceOffWall(bounds Bounds) bool {
	if !b.touchesWall(bounds) {
		return false
	}
	b.YDir = -b.YDir
	return true
}

func (b *Ball) touchesWall(bounds Bounds) bool {
	top := b.Y <= b.Extent()/2
	bottom := b.Y >= bounds.Height-b.Extent()
	return top || bottom
}

// Reset places the ball at mid and serves it toward a random side.
// A nil rng uses the global source.
func (b *Ball) Reset(mid Point, rng *rand.Rand) {
	b.X = mid.X
	b.Y = mid.Y

	var n int
	if rng != nil {
		n = rng.Intn(2)
	} else {
		n = rand.Intn(2)
	}
	if n == 0 {
		b.XDir = DirLeft
	} else {
		b.XDir = DirRight
	}
	b.YDir = DirUp
	b.Angle = 0
	b.SpeedScale = b.initialSpeedScale()
}

// Snapshot copies the state the predictor needs
func (b *Ball) Snapshot(bounds Bounds) Snapshot {
	vx, vy := b.Velocity()
	return Snapshot{
		X:          b.X,
		Y:          b.Y,
		VX:         vx,
		VY:         vy,
		XDir:       b.XDir,
		YDir:       b.YDir,
		LowerBound: bounds.Height - b.Extent(),
		UpperBound: b.Extent() / 2,
	}
}

func validTimeStep(dt float64) bool {
	return dt >= 0 && !math.IsInf(dt, 0)
}

// roundTo rounds at the given number of decimals, ties to even
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}
