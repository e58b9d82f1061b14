package systems

import (
	"math"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/sirupsen/logrus"
)

// LineOfSight проверяет, что между двумя точками нет твёрдых клеток.
// Клетки перебираются Брезенхэмом. Клетки самих точек не проверяются.
func LineOfSight(m *domain.Map, from, to vecmath.Vector2) bool {
	x0, y0 := int(math.Floor(from.X)), int(math.Floor(from.Y))
	x1, y1 := int(math.Floor(to.X)), int(math.Floor(to.Y))

	if x0 == x1 && y0 == y1 {
		return true
	}

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)
	err := dx - dy

	x, y := x0, y0
	for {
		isStart := x == x0 && y == y0
		isEnd := x == x1 && y == y1

		// Вне карты тоже считается препятствием
		if !isStart && !isEnd && m.Collides(x, y) {
			if logger.DebugEnabled() {
				logger.Log.WithFields(logrus.Fields{
					"component": "physics_system",
					"from":      from,
					"to":        to,
					"blocked":   domain.TileCoord{X: x, Y: y},
				}).Debug("Line of sight blocked")
			}
			return false
		}

		if isEnd {
			return true
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
