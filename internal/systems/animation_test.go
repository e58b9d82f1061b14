package systems

import (
	"testing"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/stretchr/testify/assert"
)

type blinkLogic struct {
	idleLogic
	elapsed float64
}

func (b *blinkLogic) Animate(dt float64) sprites.Sprite {
	b.elapsed += dt
	return sprites.Sprite{Coords: [4]int{int(b.elapsed * 10), 0, 1, 1}}
}

func TestAdvanceAnimations(t *testing.T) {
	w := spawnWorld(t)

	animated := domain.NewEntity(vecmath.Zero, &blinkLogic{})
	still := domain.NewEntity(vecmath.Zero, idleLogic{})
	w.Add(animated)
	w.Add(still)

	n := AdvanceAnimations(w, 0.3)

	assert.Equal(t, 1, n)
	if assert.NotNil(t, animated.Sprite) {
		assert.Equal(t, 3, animated.Sprite.Coords[0])
	}
	assert.Nil(t, still.Sprite)
}
