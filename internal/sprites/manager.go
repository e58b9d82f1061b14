package sprites

import (
	"fmt"
	"weak"

	"fluffy-fiesta/pkg/logger"
)

// Manager кэширует листы по имени через слабые ссылки.
//
// Менеджер однопоточный: вызывается только из тика симуляции и из
// конструирования мира.
type Manager struct {
	source Source
	sheets map[string]weak.Pointer[Sheet]
}

func NewManager(source Source) *Manager {
	return &Manager{
		source: source,
		sheets: make(map[string]weak.Pointer[Sheet]),
	}
}

// Load возвращает живой лист с этим именем или перечитывает его из источника.
func (m *Manager) Load(name string) (*Sheet, error) {
	if wp, ok := m.sheets[name]; ok {
		if sheet := wp.Value(); sheet != nil {
			return sheet, nil
		}
		// Лист был освобождён - забываем мёртвую запись
		delete(m.sheets, name)
		logger.For("sprites").WithField("sheet", name).Debug("Sprite sheet evicted, reloading")
	}

	sheet, err := m.source.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet %q: %w", name, err)
	}
	m.sheets[name] = weak.Make(sheet)
	return sheet, nil
}

// Cached сообщает, жив ли ещё лист в кэше (без загрузки).
func (m *Manager) Cached(name string) bool {
	wp, ok := m.sheets[name]
	return ok && wp.Value() != nil
}

// Prune удаляет записи об освобождённых листах и возвращает число живых.
func (m *Manager) Prune() int {
	for name, wp := range m.sheets {
		if wp.Value() == nil {
			delete(m.sheets, name)
		}
	}
	return len(m.sheets)
}
