package entities

import (
	"fmt"
	"math/rand"

	"fluffy-fiesta/internal/animation"
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/vecmath"
)

// ProjectileSheetName - лист спрайтов снаряда.
const ProjectileSheetName = "projectile.png"

// Kit - общие ресурсы и случайность для конструкторов логики.
//
// Kit держит сильные ссылки на листы спрайтов, пока жив мир.
type Kit struct {
	Seed int64

	characterSheet   *sprites.Sheet
	characterFrames  map[animation.CharacterState]animation.Sequence[sprites.Sprite]
	projectileSheet  *sprites.Sheet
	projectileSprite sprites.Sprite

	rng *rand.Rand
}

// NewKit загружает листы персонажа и снаряда.
func NewKit(mgr *sprites.Manager, seed int64) (*Kit, error) {
	character, err := mgr.Load(animation.CharacterSheetName)
	if err != nil {
		return nil, fmt.Errorf("character sheet: %w", err)
	}
	projectile, err := mgr.Load(ProjectileSheetName)
	if err != nil {
		return nil, fmt.Errorf("projectile sheet: %w", err)
	}

	sprite := projectile.Cell(0, 0, projectile.Width, projectile.Height)
	sprite.Size = vecmath.Vec(ProjectileBody.HalfWidth*2, ProjectileBody.Height)

	return &Kit{
		Seed:             seed,
		characterSheet:   character,
		characterFrames:  animation.CharacterSequences(character),
		projectileSheet:  projectile,
		projectileSprite: sprite,
		rng:              rand.New(rand.NewSource(seed)),
	}, nil
}

// NewCharacter собирает логику персонажа игрока slot.
// Каждый персонаж получает свой генератор, зерно берётся из общего.
func (k *Kit) NewCharacter(slot int) *Character {
	chooser := rand.New(rand.NewSource(k.rng.Int63()))
	return &Character{
		Slot:        slot,
		Health:      CharacterMaxHealth,
		FacingRight: true,
		kit:         k,
		anim:        animation.NewCharacterAnimation(k.characterFrames, chooser),
		requested:   animation.IdleRight,
	}
}

// NewProjectile создаёт сущность снаряда, летящего в сторону dir (-1 или 1).
func (k *Kit) NewProjectile(pos vecmath.Vector2, dir float64, owner domain.EntityID) *domain.Entity {
	e := domain.NewEntity(pos, &Projectile{
		Owner:  owner,
		TTL:    ProjectileTTL,
		Damage: ProjectileDamage,
	})
	e.Physics.Speed = vecmath.Vec(dir*ProjectileSpeed, 0)
	sprite := k.projectileSprite
	e.Sprite = &sprite
	return e
}

// Create - логика по виду сущности из определения карты.
// Персонажи на карте не размещаются, они приходят из очереди порождения.
func (k *Kit) Create(kind domain.EntityKind) (domain.EntityLogic, bool) {
	switch kind {
	case domain.KindSpawnPoint:
		return &SpawnPoint{}, true
	case domain.KindDummy:
		return &Dummy{}, true
	}
	return nil, false
}
