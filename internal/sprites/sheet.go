// Package sprites хранит разделяемые спрайт-листы.
//
// Сущности держат сильные ссылки (*Sheet) на листы, менеджер - только слабые.
// Когда лист больше никому не нужен, сборщик мусора его освобождает, и
// следующий Load перечитывает его из источника.
package sprites

import (
	"errors"
	"fmt"

	"fluffy-fiesta/pkg/vecmath"
)

// ErrSheetNotFound возвращается источником, если листа с таким именем нет.
var ErrSheetNotFound = errors.New("sprite sheet not found")

// Sheet - загруженный спрайт-лист. Указатель на Sheet и есть сильная ссылка.
type Sheet struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Sprite - прямоугольник внутри листа. Копируется по значению.
type Sprite struct {
	Sheet *Sheet `json:"-"`
	// Coords - x, y, w, h в пикселях листа.
	Coords [4]int `json:"coords"`
	// Size - размер в мировых единицах (тайл = 1x1).
	Size vecmath.Vector2 `json:"size"`
}

// SheetName возвращает имя листа или пустую строку для спрайта без листа.
func (s Sprite) SheetName() string {
	if s.Sheet == nil {
		return ""
	}
	return s.Sheet.Name
}

// Cell вырезает ячейку сетки cellW x cellH из листа.
func (s *Sheet) Cell(col, row, cellW, cellH int) Sprite {
	return Sprite{
		Sheet:  s,
		Coords: [4]int{col * cellW, row * cellH, cellW, cellH},
		Size:   vecmath.Vec(1, 1),
	}
}

// Source открывает листы по имени. Каждый вызов Open создаёт новый Sheet.
type Source interface {
	Open(name string) (*Sheet, error)
}

// StaticSource - источник с заранее известными размерами листов.
// Используется хостом без графики и тестами.
type StaticSource struct {
	Sizes map[string][2]int
	// Opens считает обращения к источнику (для диагностики кэша).
	Opens int
}

// NewStaticSource создаёт источник из таблицы "имя -> (ширина, высота)".
func NewStaticSource(sizes map[string][2]int) *StaticSource {
	return &StaticSource{Sizes: sizes}
}

// Open реализует Source.
func (s *StaticSource) Open(name string) (*Sheet, error) {
	size, ok := s.Sizes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	s.Opens++
	return &Sheet{Name: name, Width: size[0], Height: size[1]}, nil
}
