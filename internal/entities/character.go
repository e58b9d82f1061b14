package entities

import (
	"fluffy-fiesta/internal/animation"
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/internal/systems"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/sirupsen/logrus"
)

const (
	CharacterMaxHealth = 10.0
	CharacterRunSpeed  = 8.0
	CharacterJumpSpeed = 14.0
	// FireCooldown - пауза между выстрелами, с.
	FireCooldown = 0.25
	// shootPose - сколько держится поза стрельбы, с.
	shootPose = 0.21
	// RespawnDelay - сколько тиков ждать перед возрождением.
	RespawnDelay = 60
)

// CharacterBody - размер тела персонажа в клетках.
var CharacterBody = systems.Body{HalfWidth: 0.35, Height: 0.9}

// Character - персонаж игрока.
type Character struct {
	Slot        int
	Health      float64
	FacingRight bool
	Grounded    bool

	kit       *Kit
	anim      *animation.Animation[animation.CharacterState, sprites.Sprite]
	requested animation.CharacterState
	cooldown  float64
	shooting  float64
}

func (c *Character) Kind() domain.EntityKind {
	return domain.KindCharacter
}

func (c *Character) Update(self *domain.Entity, dt float64, view *domain.WorldView) bool {
	in := view.Input.Player(c.Slot)
	phys := &self.Physics

	// 1. Бег и прыжок
	phys.Speed.X = in.X() * CharacterRunSpeed
	if phys.Speed.X > 0 {
		c.FacingRight = true
	} else if phys.Speed.X < 0 {
		c.FacingRight = false
	}
	if c.Grounded && in.Jump() {
		phys.Speed.Y = CharacterJumpSpeed
	}
	phys.Speed.Y -= systems.Gravity * dt

	// 2. Движение и клетки под телом
	res := systems.Integrate(phys, CharacterBody, dt, view.Map)
	c.Grounded = res.Grounded
	if res.Damage > 0 {
		c.Health -= res.Damage * dt
	}

	// 3. Стрельба
	c.cooldown -= dt
	c.shooting -= dt
	if in.Fire && c.cooldown <= 0 {
		c.fire(self, view)
	}

	c.pickAnimation(phys.Speed.X)

	// 4. Смерть
	if c.Health <= 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "character",
			"entity_id": self.ID.String(),
			"slot":      c.Slot,
		}).Info("Character died, respawn queued")

		view.Enqueue(domain.NewDelayed(RespawnDelay, domain.NewOneShot(c.kit.NewCharacter(c.Slot))))
		return false
	}

	// 5. Камера следит только за живыми
	view.Focus(phys.Pos)
	return true
}

func (c *Character) fire(self *domain.Entity, view *domain.WorldView) {
	dir := 1.0
	if !c.FacingRight {
		dir = -1
	}
	muzzle := self.Physics.Pos.Add(vecmath.Vec(dir*(CharacterBody.HalfWidth+0.2), CharacterBody.Height/2))
	view.Add(c.kit.NewProjectile(muzzle, dir, self.ID))

	c.cooldown = FireCooldown
	c.shooting = shootPose
}

// pickAnimation переключает анимацию только при смене поведения.
func (c *Character) pickAnimation(speedX float64) {
	var next animation.CharacterState
	switch {
	case c.shooting > 0 && c.FacingRight:
		next = animation.ShootingRight
	case c.shooting > 0:
		next = animation.ShootingLeft
	case speedX > 0:
		next = animation.RunningRight
	case speedX < 0:
		next = animation.RunningLeft
	case c.FacingRight:
		next = animation.IdleRight
	default:
		next = animation.IdleLeft
	}

	if next == c.requested {
		return
	}
	c.requested = next
	c.anim.GotoState(next)
}

// Animate продвигает анимацию и возвращает текущий кадр.
func (c *Character) Animate(dt float64) sprites.Sprite {
	c.anim.Update(dt)
	return c.anim.Frame()
}

// AnimationState - состояние, которое проигрывается сейчас.
func (c *Character) AnimationState() animation.CharacterState {
	return c.anim.State()
}

// Hit наносит урон.
func (c *Character) Hit(amount float64) {
	c.Health -= amount
}
