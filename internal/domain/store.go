package domain

import (
	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
)

// slot - ячейка арены. entity == nil при live == true означает, что
// сущность сейчас выдана на обновление (checkout).
type slot struct {
	entity *Entity
	gen    uint32
	live   bool
}

// entityStore - арена сущностей со стабильными ID.
// Освобождённые слоты переиспользуются с увеличенным поколением.
type entityStore struct {
	slots []slot
	free  []uint32
	// order - ID живых сущностей в порядке добавления (порядок обновления).
	order []EntityID
}

func (s *entityStore) add(e *Entity) EntityID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{gen: 1})
	}

	sl := &s.slots[idx]
	sl.entity = e
	sl.live = true

	id := PackEntityID(e.Kind(), sl.gen, idx)
	e.ID = id
	s.order = append(s.order, id)
	return id
}

// lookup возвращает слот для актуального ID или nil.
func (s *entityStore) lookup(id EntityID) *slot {
	if id.IsNil() {
		return nil
	}
	idx := id.Index()
	if int(idx) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[idx]
	if !sl.live || sl.gen&maskGen != id.Generation() {
		return nil
	}
	return sl
}

func (s *entityStore) get(id EntityID) *Entity {
	if sl := s.lookup(id); sl != nil {
		return sl.entity
	}
	return nil
}

func (s *entityStore) remove(id EntityID) bool {
	sl := s.lookup(id)
	if sl == nil {
		return false
	}
	sl.entity = nil
	sl.live = false
	sl.gen++
	s.free = append(s.free, id.Index())

	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// checkout забирает сущность из слота на время её хода.
// Повторная выдача или устаревший ID - ошибка программы.
func (s *entityStore) checkout(id EntityID) *Entity {
	sl := s.lookup(id)
	if sl == nil || sl.entity == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"entity_id": id.String(),
		}).Error("checkout of missing entity")
		panic("domain: checkout of missing entity " + id.String())
	}
	e := sl.entity
	sl.entity = nil
	return e
}

func (s *entityStore) checkin(id EntityID, e *Entity) {
	sl := s.lookup(id)
	if sl == nil || sl.entity != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"entity_id": id.String(),
		}).Error("checkin into occupied slot")
		panic("domain: checkin into occupied slot " + id.String())
	}
	sl.entity = e
}
