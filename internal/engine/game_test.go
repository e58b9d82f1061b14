package engine

import (
	"testing"

	"fluffy-fiesta/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKind(g *Game, kind domain.EntityKind) int {
	n := 0
	for _, e := range g.World().Entities() {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

func TestGame_SpawnsOneCharacterPerTick(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)

	require.Len(t, g.World().Spawnables(), cfg.Players)
	assert.Zero(t, countKind(g, domain.KindCharacter))

	for i := 1; i <= cfg.Players; i++ {
		report := g.Step(cfg.Dt(), domain.InputSnapshot{})
		assert.False(t, report.Spawned.IsNil(), "tick %d", report.Tick)
		assert.Equal(t, i, countKind(g, domain.KindCharacter))
	}

	assert.Empty(t, g.World().Spawnables())
	report := g.Step(cfg.Dt(), domain.InputSnapshot{})
	assert.True(t, report.Spawned.IsNil(), "queue is drained")
}

func TestGame_CameraFollowsFocusInSameTick(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	start := g.Camera()

	// Тик 0: персонажей ещё нет, фокуса нет
	g.Step(cfg.Dt(), domain.InputSnapshot{})
	assert.Equal(t, start, g.Camera())

	// Тик 1: персонаж сообщил фокус, камера сдвинулась в этом же тике
	g.Step(cfg.Dt(), domain.InputSnapshot{})
	cam := g.Camera()
	assert.Less(t, cam.Size, start.Size)
	assert.NotEqual(t, start.Pos, cam.Pos)
}

func TestGame_TickAndTime(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)

	for i := 0; i < 10; i++ {
		g.Step(cfg.Dt(), domain.InputSnapshot{})
	}

	snap := g.Snapshot()
	assert.Equal(t, uint64(10), snap.Tick)
	assert.InDelta(t, 10*cfg.Dt(), snap.Time, 1e-9)
	assert.Equal(t, 100, snap.Grid.Width)
	assert.Len(t, snap.Entities, g.World().Len())
}

func TestGame_SnapshotCharacterFields(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	g.Step(cfg.Dt(), domain.InputSnapshot{})

	var found bool
	for _, e := range g.Snapshot().Entities {
		if e.Kind != domain.KindCharacter.String() {
			assert.Nil(t, e.Health)
			continue
		}
		found = true
		require.NotNil(t, e.Health)
		require.NotNil(t, e.Slot)
		assert.Equal(t, 0, *e.Slot)
		require.NotNil(t, e.Sprite)
	}
	assert.True(t, found)
}

func TestGame_MapView(t *testing.T) {
	g := newTestGame(t, testConfig())
	view := g.MapView()

	assert.Equal(t, 100*100, len(view.Tiles))
	require.Len(t, view.Types, 4)
	assert.Equal(t, "wall", view.Types[0].Name)
	assert.True(t, view.Types[0].Collide)
	assert.Equal(t, "map/castleCenter.png", view.Types[0].Sprite.Sheet)
}

func TestGame_DeterministicDigest(t *testing.T) {
	for _, lvl := range []string{LevelExample, LevelGenerated} {
		t.Run(lvl, func(t *testing.T) {
			cfg := testConfig()
			cfg.Level = lvl

			a := newTestGame(t, cfg)
			b := newTestGame(t, cfg)
			for tick := uint64(0); tick < 300; tick++ {
				in := scriptedSnapshot(cfg.Players, tick)
				a.Step(cfg.Dt(), in)
				b.Step(cfg.Dt(), in)
			}

			assert.Equal(t, a.Digest(), b.Digest())
			assert.Equal(t, a.Snapshot(), b.Snapshot())
		})
	}
}

func TestGame_DigestChangesWithState(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	before := g.Digest()
	g.Step(cfg.Dt(), domain.InputSnapshot{})
	assert.NotEqual(t, before, g.Digest())
}

func TestNewGame_NoPlayers(t *testing.T) {
	cfg := testConfig()
	cfg.Players = 0
	_, err := NewGame(cfg, cfg.Factory(), testSource())
	assert.Error(t, err)
}

func TestNewGame_BadCamera(t *testing.T) {
	cfg := testConfig()
	cfg.CameraRate = 2
	_, err := NewGame(cfg, cfg.Factory(), testSource())
	assert.Error(t, err)
}
