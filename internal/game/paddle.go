package game

const (
	PaddleSpeed       = 150.0 // units per second
	PaddleWidthRatio  = 0.025 // of screen width
	PaddleHeightRatio = 0.25  // of screen height
	PaddleEdgeOffset  = 0.025 // gap to the screen edge, of screen width
)

// Side identifies which end of the playfield a paddle defends
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type Paddle struct {
	Side Side
	Rect Rect
}

// NewPaddle sizes and positions a paddle for the given playfield
func NewPaddle(side Side, bounds Bounds) *Paddle {
	p := &Paddle{Side: side}
	p.Rect.Width = bounds.Width * PaddleWidthRatio
	p.Rect.Height = bounds.Height * PaddleHeightRatio
	if side == SideLeft {
		p.Rect.Left = bounds.Width * PaddleEdgeOffset
	} else {
		p.Rect.Left = bounds.Width*(1-PaddleEdgeOffset) - p.Rect.Width
	}
	p.Reset(bounds)
	return p
}

func (p *Paddle) MoveUp(dt float64) {
	p.Rect.Top -= PaddleSpeed * dt
}

func (p *Paddle) MoveDown(dt float64) {
	p.Rect.Top += PaddleSpeed * dt
}

// Clamp keeps the paddle inside the playfield
func (p *Paddle) Clamp(bounds Bounds) {
	if p.Rect.Top > bounds.Height-p.Rect.Height {
		p.Rect.Top = bounds.Height - p.Rect.Height
	}
	if p.Rect.Top < 0 {
		p.Rect.Top = 0
	}
}

// Reset centres the paddle vertically
func (p *Paddle) Reset(bounds Bounds) {
	p.Rect.Top = bounds.Mid().Y - p.Rect.Height*0.5
}

func (p *Paddle) CenterY() float64 {
	return p.Rect.CenterY()
}
