package systems

import (
	"testing"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleLogic struct{}

func (idleLogic) Kind() domain.EntityKind { return domain.KindDummy }

func (idleLogic) Update(*domain.Entity, float64, *domain.WorldView) bool { return true }

// fakeSpawnable отвечает заранее заданным образом и считает вызовы.
type fakeSpawnable struct {
	name    string
	keep    bool
	produce bool
	calls   int
	lastPos vecmath.Vector2
}

func (f *fakeSpawnable) Spawn(pos vecmath.Vector2) (bool, *domain.Entity) {
	f.calls++
	f.lastPos = pos
	if f.produce {
		return f.keep, domain.NewEntity(pos, idleLogic{})
	}
	return f.keep, nil
}

func spawnWorld(t *testing.T) *domain.World {
	t.Helper()
	m, err := domain.NewMap(4, 4, []domain.TileType{{Name: "air"}}, make([]domain.Tile, 16))
	require.NoError(t, err)
	return domain.NewWorld(m)
}

func names(queue []domain.Spawnable) []string {
	out := make([]string, 0, len(queue))
	for _, s := range queue {
		out = append(out, s.(*fakeSpawnable).name)
	}
	return out
}

func TestProcessSpawnables_Rule(t *testing.T) {
	tests := []struct {
		name      string
		queue     []*fakeSpawnable
		spawned   bool
		calls     []int
		remaining []string
	}{
		{
			name:      "empty queue",
			queue:     nil,
			spawned:   false,
			calls:     []int{},
			remaining: []string{},
		},
		{
			name: "first produces and retires",
			queue: []*fakeSpawnable{
				{name: "a", produce: true},
				{name: "b", produce: true, keep: true},
			},
			spawned:   true,
			calls:     []int{1, 0},
			remaining: []string{"b"},
		},
		{
			name: "decliners before producer",
			queue: []*fakeSpawnable{
				{name: "a", keep: true},
				{name: "b", keep: false},
				{name: "c", produce: true, keep: true},
				{name: "d", produce: true},
			},
			spawned:   true,
			calls:     []int{1, 1, 1, 0},
			remaining: []string{"a", "c", "d"},
		},
		{
			name: "nobody produces",
			queue: []*fakeSpawnable{
				{name: "a", keep: true},
				{name: "b"},
			},
			spawned:   false,
			calls:     []int{1, 1},
			remaining: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := spawnWorld(t)
			for _, s := range tt.queue {
				w.Enqueue(s)
			}

			id, ok := ProcessSpawnables(w, vecmath.Vec(1, 1))

			assert.Equal(t, tt.spawned, ok)
			if tt.spawned {
				assert.Equal(t, 1, w.Len())
				e, found := w.Get(id)
				require.True(t, found)
				assert.Equal(t, vecmath.Vec(1, 1), e.Physics.Pos)
			} else {
				assert.Equal(t, 0, w.Len())
			}

			calls := make([]int, 0, len(tt.queue))
			for _, s := range tt.queue {
				calls = append(calls, s.calls)
			}
			assert.Equal(t, tt.calls, calls)
			assert.Equal(t, tt.remaining, names(w.Spawnables()))
		})
	}
}

func TestProcessSpawnables_AtMostOnePerTick(t *testing.T) {
	w := spawnWorld(t)
	for i := 0; i < 3; i++ {
		w.Enqueue(domain.NewOneShot(idleLogic{}))
	}

	for tick := 1; tick <= 3; tick++ {
		_, ok := ProcessSpawnables(w, vecmath.Zero)
		require.True(t, ok)
		assert.Equal(t, tick, w.Len())
	}

	_, ok := ProcessSpawnables(w, vecmath.Zero)
	assert.False(t, ok)
	assert.Empty(t, w.Spawnables())
}

func TestSpawnSystem_PicksOffer(t *testing.T) {
	w := spawnWorld(t)
	s := &fakeSpawnable{name: "a", produce: true, keep: true}
	w.Enqueue(s)

	offers := []vecmath.Vector2{vecmath.Vec(1, 1), vecmath.Vec(2, 1), vecmath.Vec(3, 1)}
	var sys SpawnSystem

	_, ok := sys.Run(w, nil, 0)
	assert.False(t, ok, "no spawn point offered")
	assert.Equal(t, 0, s.calls)

	_, ok = sys.Run(w, offers, 4)
	require.True(t, ok)
	assert.Equal(t, vecmath.Vec(2, 1), s.lastPos)
}

func TestSpawnSystem_EmptyQueue(t *testing.T) {
	w := spawnWorld(t)
	var sys SpawnSystem

	_, ok := sys.Run(w, []vecmath.Vector2{vecmath.Zero}, 0)
	assert.False(t, ok)
}

func TestSpawnSystem_QueueCountGatesRun(t *testing.T) {
	tests := []struct {
		name      string
		queue     []*fakeSpawnable
		wantOK    bool
		wantCount int
	}{
		{"empty", nil, false, 0},
		{"declines and stays", []*fakeSpawnable{{name: "a", keep: true}}, false, 1},
		{"spawns and retires", []*fakeSpawnable{{name: "a", produce: true}}, true, 0},
		{"spawns one of two", []*fakeSpawnable{{name: "a", produce: true}, {name: "b", produce: true}}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := spawnWorld(t)
			for _, s := range tt.queue {
				w.Enqueue(s)
			}
			require.Equal(t, len(tt.queue), w.SpawnableCount())

			var sys SpawnSystem
			_, ok := sys.Run(w, []vecmath.Vector2{vecmath.Vec(1, 1)}, 0)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCount, w.SpawnableCount())
			assert.Len(t, w.Spawnables(), tt.wantCount)
		})
	}
}
