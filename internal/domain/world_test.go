package domain

import (
	"testing"

	"fluffy-fiesta/pkg/vecmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderLogic записывает, что видела сущность в свой ход.
type recorderLogic struct {
	kind    EntityKind
	calls   int
	keep    bool
	onTurn  func(self *Entity, view *WorldView)
	sawSelf bool
	others  int
}

func (p *recorderLogic) Kind() EntityKind { return p.kind }

func (p *recorderLogic) Update(self *Entity, _ float64, view *WorldView) bool {
	p.calls++
	p.others = 0
	view.Others(func(e *Entity) bool {
		if e == self {
			p.sawSelf = true
		}
		p.others++
		return true
	})
	if _, ok := view.Get(self.ID); ok {
		p.sawSelf = true
	}
	if p.onTurn != nil {
		p.onTurn(self, view)
	}
	return p.keep
}

func newRecorder() *recorderLogic {
	return &recorderLogic{kind: KindDummy, keep: true}
}

func emptyWorld(t *testing.T) *World {
	t.Helper()
	m, err := NewMap(10, 10, []TileType{{Name: "air"}}, make([]Tile, 100))
	require.NoError(t, err)
	return NewWorld(m)
}

func TestWorld_AddGetRemove(t *testing.T) {
	w := emptyWorld(t)

	e := NewEntity(vecmath.Vec(1, 2), newRecorder())
	id := w.Add(e)

	assert.Equal(t, id, e.ID)
	assert.Equal(t, KindDummy, id.Kind())

	got, ok := w.Get(id)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Equal(t, 1, w.Len())

	assert.True(t, w.Remove(id))
	assert.False(t, w.Remove(id), "second remove is a no-op")
	_, ok = w.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestWorld_SlotReuseBumpsGeneration(t *testing.T) {
	w := emptyWorld(t)

	first := w.Add(NewEntity(vecmath.Zero, newRecorder()))
	w.Remove(first)
	second := w.Add(NewEntity(vecmath.Zero, newRecorder()))

	assert.Equal(t, first.Index(), second.Index())
	assert.Equal(t, first.Generation()+1, second.Generation())

	_, ok := w.Get(first)
	assert.False(t, ok, "stale id must not resolve to the new occupant")
}

func TestWorld_UpdateVisitsEachOnce(t *testing.T) {
	w := emptyWorld(t)

	recorders := make([]*recorderLogic, 5)
	for i := range recorders {
		recorders[i] = newRecorder()
		w.Add(NewEntity(vecmath.Vec(float64(i), 0), recorders[i]))
	}

	w.UpdateEntities(0.1, InputSnapshot{})

	for i, p := range recorders {
		assert.Equal(t, 1, p.calls, "entity %d", i)
		assert.False(t, p.sawSelf, "entity %d saw itself", i)
		assert.Equal(t, 4, p.others, "entity %d", i)
	}

	// Порядок сохраняется между тиками
	order := w.Entities()
	for i, e := range order {
		assert.Equal(t, float64(i), e.Physics.Pos.X)
	}
}

func TestWorld_UpdateRemovesOnFalse(t *testing.T) {
	w := emptyWorld(t)

	dying := newRecorder()
	dying.keep = false
	survivor := newRecorder()

	dyingID := w.Add(NewEntity(vecmath.Zero, dying))
	w.Add(NewEntity(vecmath.Zero, survivor))

	report := w.UpdateEntities(0.1, InputSnapshot{})

	assert.Equal(t, []EntityID{dyingID}, report.Removed)
	assert.Equal(t, 1, w.Len())

	w.UpdateEntities(0.1, InputSnapshot{})
	assert.Equal(t, 1, dying.calls)
	assert.Equal(t, 2, survivor.calls)
}

func TestWorld_AddDuringPassIsDeferred(t *testing.T) {
	w := emptyWorld(t)

	child := newRecorder()
	parent := newRecorder()
	parent.onTurn = func(self *Entity, view *WorldView) {
		if parent.calls == 1 {
			view.Add(NewEntity(self.Physics.Pos, child))
		}
	}
	w.Add(NewEntity(vecmath.Zero, parent))

	report := w.UpdateEntities(0.1, InputSnapshot{})
	require.Len(t, report.Added, 1)
	assert.Equal(t, 0, child.calls, "new entity is not updated in the tick it was created")
	assert.Equal(t, 0, parent.others, "pending entity is not visible during the pass")
	assert.Equal(t, 2, w.Len())

	w.UpdateEntities(0.1, InputSnapshot{})
	assert.Equal(t, 1, child.calls)
}

func TestWorld_OthersCanBeMutated(t *testing.T) {
	w := emptyWorld(t)

	target := newRecorder()
	targetID := w.Add(NewEntity(vecmath.Zero, target))

	pusher := newRecorder()
	pusher.onTurn = func(_ *Entity, view *WorldView) {
		if e, ok := view.Get(targetID); ok {
			e.Physics.Speed = vecmath.Vec(3, 0)
		}
	}
	w.Add(NewEntity(vecmath.Zero, pusher))

	w.UpdateEntities(0.1, InputSnapshot{})

	e, _ := w.Get(targetID)
	assert.Equal(t, vecmath.Vec(3, 0), e.Physics.Speed)
}

func TestWorld_ReportFocusAndSpawnPoints(t *testing.T) {
	w := emptyWorld(t)

	a := newRecorder()
	a.onTurn = func(_ *Entity, view *WorldView) {
		view.Focus(vecmath.Vec(1, 5))
		view.OfferSpawnPoint(vecmath.Vec(2, 1))
	}
	b := newRecorder()
	b.onTurn = func(_ *Entity, view *WorldView) {
		view.Focus(vecmath.Vec(4, 2))
		assert.Equal(t, 0.5, view.Input.Player(0).X())
	}
	w.Add(NewEntity(vecmath.Zero, a))
	w.Add(NewEntity(vecmath.Zero, b))

	report := w.UpdateEntities(0.1, InputSnapshot{Players: []PlayerInput{{AxisX: 0.5}}})

	min, max, ok := report.Focus.Bounds()
	require.True(t, ok)
	assert.Equal(t, vecmath.Vec(1, 2), min)
	assert.Equal(t, vecmath.Vec(4, 5), max)
	assert.Equal(t, []vecmath.Vector2{vecmath.Vec(2, 1)}, report.SpawnPoints)
}

func TestFocusBox_Empty(t *testing.T) {
	var box FocusBox
	_, _, ok := box.Bounds()
	assert.False(t, ok)

	box.Add(vecmath.Vec(-1, 3))
	min, max, ok := box.Bounds()
	assert.True(t, ok)
	assert.Equal(t, min, max)
}

func TestWorld_TileEntities(t *testing.T) {
	w := emptyWorld(t)

	e := NewEntity(vecmath.Vec(3, 4), newRecorder())
	w.SetTileEntity(TileCoord{X: 3, Y: 4}, e)

	got, ok := w.TileEntity(TileCoord{X: 3, Y: 4})
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Equal(t, 0, w.Len(), "tile entities are not part of the update pass")
}

func TestOneShotAndDelayed(t *testing.T) {
	logic := newRecorder()
	shot := NewOneShot(logic)
	shot.Offset = vecmath.Vec(0, 1)

	d := NewDelayed(2, shot)

	keep, e := d.Spawn(vecmath.Vec(5, 5))
	assert.True(t, keep)
	assert.Nil(t, e)

	keep, e = d.Spawn(vecmath.Vec(5, 5))
	assert.True(t, keep)
	assert.Nil(t, e)

	keep, e = d.Spawn(vecmath.Vec(5, 5))
	assert.False(t, keep)
	require.NotNil(t, e)
	assert.Equal(t, vecmath.Vec(5, 6), e.Physics.Pos)
	assert.Same(t, EntityLogic(logic), e.Logic)

	keep, e = shot.Spawn(vecmath.Zero)
	assert.False(t, keep)
	assert.Nil(t, e, "one shot retires after producing")
}

func TestWorld_SpawnableQueue(t *testing.T) {
	w := emptyWorld(t)
	w.Enqueue(NewOneShot(newRecorder()))
	w.Enqueue(NewOneShot(newRecorder()))

	assert.Len(t, w.Spawnables(), 2)
	assert.Equal(t, 2, w.SpawnableCount())

	q := w.TakeSpawnables()
	assert.Len(t, q, 2)
	assert.Empty(t, w.Spawnables())
	assert.Equal(t, 0, w.SpawnableCount())

	w.Enqueue(NewOneShot(newRecorder()))
	w.RestoreSpawnables(q[:1])
	all := w.Spawnables()
	require.Len(t, all, 2)
	assert.Equal(t, len(all), w.SpawnableCount())
	assert.Same(t, q[0], all[0])
}
