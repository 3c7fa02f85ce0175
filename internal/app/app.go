package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/diegok/pypong/internal/ai"
	"github.com/diegok/pypong/internal/config"
	"github.com/diegok/pypong/internal/game"
)

// Result summarizes a finished run
type Result struct {
	LeftScore   int
	RightScore  int
	Winner      game.Side
	GameOver    bool
	Ticks       int
	PaddleHits  int
	WallBounces int
}

// App drives a headless match between two controllers.
type App struct {
	cfg    *config.Config
	log    *slog.Logger
	match  *game.Match
	left   *ai.Controller
	right  *ai.Controller
	result Result
}

// NewApp creates a new App instance with the given configuration.
// A nil logger discards all output.
func NewApp(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &App{
		cfg:   cfg,
		log:   log,
		match: game.NewMatch(cfg.Bounds(), cfg.PointsToWin, cfg.BallParams(), rng),
		left:  ai.NewController(game.SideLeft, cfg.LeftPolicy),
		right: ai.NewController(game.SideRight, cfg.RightPolicy),
	}
}

// Match exposes the live match
func (a *App) Match() *game.Match {
	return a.match
}

// Run steps the match until a side wins, the tick limit is reached or ctx
// is cancelled. A cancelled run still returns the partial result.
func (a *App) Run(ctx context.Context) (Result, error) {
	a.log.Info("match started",
		"width", a.cfg.Width,
		"height", a.cfg.Height,
		"points", a.cfg.PointsToWin,
		"left", a.cfg.LeftPolicy,
		"right", a.cfg.RightPolicy,
		"step", a.cfg.Step,
	)

	for !a.match.IsGameOver() {
		if a.cfg.MaxTicks > 0 && a.match.Tick >= a.cfg.MaxTicks {
			a.log.Warn("tick limit reached", "ticks", a.match.Tick)
			break
		}
		select {
		case <-ctx.Done():
			a.finish()
			return a.result, ctx.Err()
		default:
		}

		if err := a.tick(); err != nil {
			a.finish()
			return a.result, err
		}
	}

	a.finish()
	if a.result.GameOver {
		a.log.Info("match over",
			"winner", a.result.Winner,
			"left", a.result.LeftScore,
			"right", a.result.RightScore,
			"ticks", a.result.Ticks,
		)
	}
	return a.result, nil
}

// tick runs one frame: ball physics, then both controllers, then paddle bounds
func (a *App) tick() error {
	ev, err := a.match.Update(a.cfg.Step)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	a.report(ev)

	a.left.Step(a.match, a.cfg.Step)
	a.right.Step(a.match, a.cfg.Step)
	a.match.ClampPaddles()
	return nil
}

func (a *App) report(ev game.Events) {
	for _, d := range ev.Deflections {
		a.result.PaddleHits++
		a.log.Debug("paddle hit",
			"tick", a.match.Tick,
			"offset", d.Offset,
			"normalized", d.Normalized,
			"angle", d.Angle,
			"speed_scale", a.match.Ball.SpeedScale,
		)
	}
	if ev.Wall {
		a.result.WallBounces++
		a.log.Debug("wall bounce", "tick", a.match.Tick, "y", a.match.Ball.Y)
	}
	if ev.Scored {
		a.log.Info("point",
			"scorer", ev.Scorer,
			"left", a.match.LeftScore,
			"right", a.match.RightScore,
			"tick", a.match.Tick,
		)
	}
}

func (a *App) finish() {
	a.result.LeftScore = a.match.LeftScore
	a.result.RightScore = a.match.RightScore
	a.result.Ticks = a.match.Tick
	a.result.GameOver = a.match.IsGameOver()
	if a.result.GameOver {
		a.result.Winner = a.match.Winner()
	}
}
