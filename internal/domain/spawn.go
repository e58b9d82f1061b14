package domain

import "fluffy-fiesta/pkg/vecmath"

// Spawnable - отложенное создание сущности.
//
// Spawn вызывается системой порождения с выбранной точкой. keep - оставить
// ли объект в очереди, produced - новая сущность или nil.
type Spawnable interface {
	Spawn(pos vecmath.Vector2) (keep bool, produced *Entity)
}

// OneShot отдаёт заранее собранную логику один раз и выбывает.
type OneShot struct {
	Logic  EntityLogic
	Offset vecmath.Vector2
}

func NewOneShot(logic EntityLogic) *OneShot {
	return &OneShot{Logic: logic}
}

func (s *OneShot) Spawn(pos vecmath.Vector2) (bool, *Entity) {
	if s.Logic == nil {
		return false, nil
	}
	logic := s.Logic
	s.Logic = nil
	return false, NewEntity(pos.Add(s.Offset), logic)
}

// Delayed отказывается Ticks раз, затем передаёт вызовы Inner.
type Delayed struct {
	Ticks int
	Inner Spawnable
}

func NewDelayed(ticks int, inner Spawnable) *Delayed {
	return &Delayed{Ticks: ticks, Inner: inner}
}

func (d *Delayed) Spawn(pos vecmath.Vector2) (bool, *Entity) {
	if d.Ticks > 0 {
		d.Ticks--
		return true, nil
	}
	return d.Inner.Spawn(pos)
}
