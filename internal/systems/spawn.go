package systems

import (
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/sirupsen/logrus"
)

// ProcessSpawnables обрабатывает очередь порождения мира за один тик.
//
// Очередь забирается целиком и обходится по порядку. Каждый объект
// вызывается, пока один из них не породит сущность, остальные переносятся
// в новую очередь без вызова. Вызванный объект остаётся в очереди только
// при keep == true. За вызов создаётся не больше одной сущности.
func ProcessSpawnables(w *domain.World, pos vecmath.Vector2) (domain.EntityID, bool) {
	queue := w.TakeSpawnables()
	kept := queue[:0]

	var (
		spawned domain.EntityID
		done    bool
	)
	for _, s := range queue {
		if done {
			kept = append(kept, s)
			continue
		}

		keep, produced := s.Spawn(pos)
		if produced != nil {
			spawned = w.Add(produced)
			done = true
		}
		if keep {
			kept = append(kept, s)
		}
	}

	w.RestoreSpawnables(kept)

	if done && logger.DebugEnabled() {
		logger.Log.WithFields(logrus.Fields{
			"component": "spawn_system",
			"entity_id": spawned.String(),
			"pos":       pos,
			"queued":    len(kept),
		}).Debug("entity spawned")
	}
	return spawned, done
}

// SpawnSystem материализует очередь порождения в точках спавна.
type SpawnSystem struct{}

// Run выбирает одну из предложенных за тик точек и обрабатывает очередь.
// Без точек или с пустой очередью ничего не делает.
func (SpawnSystem) Run(w *domain.World, offers []vecmath.Vector2, tick uint64) (domain.EntityID, bool) {
	if len(offers) == 0 || w.SpawnableCount() == 0 {
		return domain.NilEntityID, false
	}
	pos := offers[tick%uint64(len(offers))]
	return ProcessSpawnables(w, pos)
}
