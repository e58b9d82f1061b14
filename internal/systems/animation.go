package systems

import "fluffy-fiesta/internal/domain"

// AdvanceAnimations продвигает анимации всех сущностей с Animated логикой
// и записывает выбранный кадр в Entity.Sprite.
func AdvanceAnimations(w *domain.World, dt float64) int {
	n := 0
	for _, e := range w.Entities() {
		animated, ok := e.Logic.(domain.Animated)
		if !ok {
			continue
		}
		sprite := animated.Animate(dt)
		e.Sprite = &sprite
		n++
	}
	return n
}
