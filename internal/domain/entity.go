package domain

import (
	"fmt"

	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/vecmath"
)

// EntityPhysics - физические параметры сущности.
// Меняется только логикой самой сущности в её ход.
type EntityPhysics struct {
	Pos   vecmath.Vector2 `json:"pos"`
	Speed vecmath.Vector2 `json:"speed"`
}

// EntityLogic - поведение одного вида сущностей.
type EntityLogic interface {
	Kind() EntityKind

	// Update вызывается ровно один раз за тик. self недоступна через view.
	// false - сущность удаляется из мира в конце своего хода.
	Update(self *Entity, dt float64, view *WorldView) bool
}

// Animated - логика, у которой есть собственная анимация.
// Система анимаций вызывает Animate после обновления камеры.
type Animated interface {
	Animate(dt float64) sprites.Sprite
}

// Damageable - логика, которой можно нанести урон извне.
type Damageable interface {
	Hit(amount float64)
}

// Entity - сущность мира: физика, логика и текущий спрайт.
type Entity struct {
	ID      EntityID
	Physics EntityPhysics
	Logic   EntityLogic
	// Sprite - текущий выбранный спрайт, nil - нечего рисовать.
	Sprite *sprites.Sprite
}

// NewEntity создаёт сущность в точке pos. ID назначает мир при добавлении.
func NewEntity(pos vecmath.Vector2, logic EntityLogic) *Entity {
	return &Entity{
		Physics: EntityPhysics{Pos: pos},
		Logic:   logic,
	}
}

// Kind - вид сущности по её логике.
func (e *Entity) Kind() EntityKind {
	if e.Logic == nil {
		return KindUnknown
	}
	return e.Logic.Kind()
}

func (e *Entity) String() string {
	return fmt.Sprintf("Entity %s %s @ (%.2f, %.2f)", e.ID, e.Kind(), e.Physics.Pos.X, e.Physics.Pos.Y)
}
