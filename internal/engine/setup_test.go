package engine

import (
	"os"
	"testing"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/level"
	"fluffy-fiesta/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("warn", "text")
	os.Exit(m.Run())
}

func testConfig() Config {
	cfg := NewConfig()
	cfg.Seed = 1234
	return cfg
}

func testSource() sprites.Source {
	return sprites.NewStaticSource(level.DefaultSheets())
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, cfg.Factory(), testSource())
	require.NoError(t, err)
	return g
}

// scriptedInput - детерминированный ввод, зависящий только от тика и слота.
type scriptedInput struct{}

func (scriptedInput) Input(slot int, tick uint64) domain.PlayerInput {
	phase := (tick/30 + uint64(slot)) % 4
	return domain.PlayerInput{
		Left:  phase == 0,
		Right: phase == 2,
		Up:    tick%45 == uint64(slot),
		Fire:  tick%20 == 0,
	}
}

func scriptedSnapshot(players int, tick uint64) domain.InputSnapshot {
	snap := domain.InputSnapshot{Players: make([]domain.PlayerInput, players)}
	for i := range snap.Players {
		snap.Players[i] = scriptedInput{}.Input(i, tick)
	}
	return snap
}
