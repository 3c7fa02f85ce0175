package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/pypong/internal/ai"
	"github.com/diegok/pypong/internal/config"
	"github.com/diegok/pypong/internal/game"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	cfg.MaxTicks = 600
	require.NoError(t, cfg.Validate())
	return &cfg
}

func TestApp_RunStopsAtTickLimit(t *testing.T) {
	cfg := testConfig(t)

	result, err := NewApp(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.LessOrEqual(t, result.Ticks, cfg.MaxTicks)
	if !result.GameOver {
		assert.Equal(t, cfg.MaxTicks, result.Ticks)
	}
}

func TestApp_RunIsDeterministicForSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.LeftPolicy = ai.Predictive
	cfg.RightPolicy = ai.Predictive
	cfg.MaxTicks = 3000

	first, err := NewApp(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	second, err := NewApp(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApp_RunCountsPaddleHits(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxTicks = 300

	a := NewApp(cfg, nil)
	// Serve straight at the left paddle centre
	a.Match().Ball.XDir = game.DirLeft

	result, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.PaddleHits, 1)
}

func TestApp_RunAlreadyOver(t *testing.T) {
	cfg := testConfig(t)

	a := NewApp(cfg, nil)
	a.Match().RightScore = cfg.PointsToWin

	result, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.GameOver)
	assert.Equal(t, game.SideRight, result.Winner)
	assert.Equal(t, 0, result.Ticks)
}

func TestApp_RunCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewApp(cfg, nil).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Ticks)
}

func TestApp_RunInvalidStep(t *testing.T) {
	cfg := testConfig(t)
	cfg.Step = -1

	_, err := NewApp(cfg, nil).Run(context.Background())

	assert.ErrorIs(t, err, game.ErrInvalidTimeStep)
}
