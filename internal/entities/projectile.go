package entities

import (
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/systems"
	"fluffy-fiesta/pkg/vecmath"
)

const (
	ProjectileSpeed  = 20.0
	ProjectileTTL    = 2.0
	ProjectileDamage = 4.0
	// HitRadius - расстояние до центра цели, при котором снаряд попадает.
	HitRadius = 0.6
)

// ProjectileBody - размер снаряда.
var ProjectileBody = systems.Body{HalfWidth: 0.1, Height: 0.2}

// Projectile летит прямо, пока не врежется или не истечёт TTL.
type Projectile struct {
	Owner  domain.EntityID
	TTL    float64
	Damage float64
}

func (p *Projectile) Kind() domain.EntityKind {
	return domain.KindProjectile
}

func (p *Projectile) Update(self *domain.Entity, dt float64, view *domain.WorldView) bool {
	p.TTL -= dt
	if p.TTL <= 0 {
		return false
	}

	res := systems.Integrate(&self.Physics, ProjectileBody, dt, view.Map)
	if res.BlockedX || res.BlockedY || res.OutOfMap {
		return false
	}

	// Первый, кто может получить урон, получает его
	hit := false
	center := self.Physics.Pos.Add(vecmath.Vec(0, ProjectileBody.Height/2))
	view.Others(func(e *domain.Entity) bool {
		if e.ID == p.Owner {
			return true
		}
		target, ok := e.Logic.(domain.Damageable)
		if !ok {
			return true
		}
		targetCenter := e.Physics.Pos.Add(vecmath.Vec(0, CharacterBody.Height/2))
		if targetCenter.Sub(center).Len() > HitRadius {
			return true
		}
		target.Hit(p.Damage)
		hit = true
		return false
	})
	return !hit
}
