package domain

import (
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/sirupsen/logrus"
)

// World - карта, сущности и очередь порождения.
//
// Мир однопоточный: все мутации идут из одного цикла симуляции.
type World struct {
	Map *Map

	store entityStore
	// tileEntities - сущности клеток с HasEntity. В проход обновления
	// не входят.
	tileEntities map[TileCoord]*Entity
	spawnables   []Spawnable
}

// NewWorld создаёт пустой мир на карте m.
func NewWorld(m *Map) *World {
	return &World{
		Map:          m,
		tileEntities: make(map[TileCoord]*Entity),
	}
}

// Add регистрирует сущность и назначает ей ID.
func (w *World) Add(e *Entity) EntityID {
	id := w.store.add(e)
	if logger.DebugEnabled() {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"entity_id": id.String(),
			"kind":      e.Kind().String(),
		}).Debug("entity added")
	}
	return id
}

// Get возвращает сущность по ID. Сущность, которая сейчас обновляется,
// недоступна.
func (w *World) Get(id EntityID) (*Entity, bool) {
	e := w.store.get(id)
	return e, e != nil
}

// Remove удаляет сущность. Устаревший ID - false.
func (w *World) Remove(id EntityID) bool {
	ok := w.store.remove(id)
	if ok && logger.DebugEnabled() {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"entity_id": id.String(),
		}).Debug("entity removed")
	}
	return ok
}

// Entities возвращает сущности в порядке обновления.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.store.order))
	for _, id := range w.store.order {
		if e := w.store.get(id); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Len - число живых сущностей.
func (w *World) Len() int {
	return len(w.store.order)
}

// Enqueue ставит порождаемое в конец очереди.
func (w *World) Enqueue(s Spawnable) {
	w.spawnables = append(w.spawnables, s)
}

// Spawnables возвращает копию очереди порождения.
func (w *World) Spawnables() []Spawnable {
	return append([]Spawnable(nil), w.spawnables...)
}

// SpawnableCount - длина очереди порождения без копирования.
func (w *World) SpawnableCount() int {
	return len(w.spawnables)
}

// TakeSpawnables забирает всю очередь, оставляя её пустой.
func (w *World) TakeSpawnables() []Spawnable {
	queue := w.spawnables
	w.spawnables = nil
	return queue
}

// RestoreSpawnables возвращает очередь после обработки. Всё, что было
// добавлено во время обработки, остаётся после неё.
func (w *World) RestoreSpawnables(queue []Spawnable) {
	w.spawnables = append(queue, w.spawnables...)
}

// SetTileEntity привязывает сущность к клетке.
func (w *World) SetTileEntity(coord TileCoord, e *Entity) {
	w.tileEntities[coord] = e
}

// TileEntity - сущность клетки, если есть.
func (w *World) TileEntity(coord TileCoord) (*Entity, bool) {
	e, ok := w.tileEntities[coord]
	return e, ok
}

// TileEntityCount - число тайловых сущностей.
func (w *World) TileEntityCount() int {
	return len(w.tileEntities)
}

// UpdateReport - итог одного прохода обновления сущностей.
type UpdateReport struct {
	Focus FocusBox
	// SpawnPoints - точки, предложенные за этот проход.
	SpawnPoints []vecmath.Vector2
	Added       []EntityID
	Removed     []EntityID
}

// UpdateEntities обновляет каждую живую сущность ровно один раз.
//
// Активная сущность на время хода изымается из своего слота, поэтому
// через WorldView её не достать. Сущности, добавленные во время прохода,
// появляются в мире после него и в этом тике не обновляются.
func (w *World) UpdateEntities(dt float64, input InputSnapshot) *UpdateReport {
	report := &UpdateReport{}
	view := &WorldView{
		Map:    w.Map,
		Input:  input,
		world:  w,
		report: report,
	}

	ids := append([]EntityID(nil), w.store.order...)
	for _, id := range ids {
		e := w.store.checkout(id)
		view.active = id

		keep := e.Logic.Update(e, dt, view)

		w.store.checkin(id, e)
		if !keep {
			w.Remove(id)
			report.Removed = append(report.Removed, id)
		}
	}
	view.active = NilEntityID

	for _, e := range view.pending {
		report.Added = append(report.Added, w.Add(e))
	}
	return report
}
