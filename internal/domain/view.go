package domain

import "fluffy-fiesta/pkg/vecmath"

// WorldView - то, что видит сущность во время своего хода: карта, ввод,
// остальные сущности, очередь порождения и накопитель фокуса камеры.
type WorldView struct {
	Map   *Map
	Input InputSnapshot

	world   *World
	active  EntityID
	report  *UpdateReport
	pending []*Entity
}

// Active - ID сущности, которая сейчас обновляется.
func (v *WorldView) Active() EntityID {
	return v.active
}

// Focus просит камеру держать pos в кадре.
func (v *WorldView) Focus(pos vecmath.Vector2) {
	v.report.Focus.Add(pos)
}

// OfferSpawnPoint предлагает точку для системы порождения.
func (v *WorldView) OfferSpawnPoint(pos vecmath.Vector2) {
	v.report.SpawnPoints = append(v.report.SpawnPoints, pos)
}

// Others обходит все сущности, кроме активной. fn возвращает false,
// чтобы прервать обход.
func (v *WorldView) Others(fn func(e *Entity) bool) {
	for _, id := range v.world.store.order {
		if id == v.active {
			continue
		}
		e := v.world.store.get(id)
		if e == nil {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Get ищет другую сущность. Активная сущность не находится.
func (v *WorldView) Get(id EntityID) (*Entity, bool) {
	if id == v.active {
		return nil, false
	}
	return v.world.Get(id)
}

// Add откладывает добавление сущности до конца прохода.
func (v *WorldView) Add(e *Entity) {
	v.pending = append(v.pending, e)
}

// Enqueue ставит порождаемое в очередь мира.
func (v *WorldView) Enqueue(s Spawnable) {
	v.world.Enqueue(s)
}

// FocusBox - ограничивающий прямоугольник точек фокуса за тик.
type FocusBox struct {
	min, max vecmath.Vector2
	n        int
}

func (b *FocusBox) Add(pos vecmath.Vector2) {
	if b.n == 0 {
		b.min, b.max = pos, pos
	} else {
		b.min = vecmath.Min(b.min, pos)
		b.max = vecmath.Max(b.max, pos)
	}
	b.n++
}

// Bounds возвращает углы прямоугольника; ok == false, если фокуса не было.
func (b FocusBox) Bounds() (min, max vecmath.Vector2, ok bool) {
	return b.min, b.max, b.n > 0
}

// Count - сколько точек добавлено.
func (b FocusBox) Count() int {
	return b.n
}
