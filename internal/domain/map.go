package domain

import (
	"fmt"
	"math"

	"github.com/solarlune/resolv"

	"fluffy-fiesta/pkg/vecmath"
)

// Map - сетка клеток.
//
// Клетки хранятся построчно: индекс = y*Width + x, Y растёт снизу вверх,
// X - слева направо.
type Map struct {
	Width  int
	Height int
	// Палитра неизменна после создания карты.
	tiletypes []TileType
	Tiles     []Tile
	// Твёрдые клетки в resolv, строится в NewMap
	space *resolv.Space
}

// NewMap проверяет, что размер сетки совпадает с width*height и каждый
// индекс клетки есть в палитре.
func NewMap(width, height int, tiletypes []TileType, tiles []Tile) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("tile grid has %d cells, expected %d", len(tiles), width*height)
	}
	for i, t := range tiles {
		if int(t) >= len(tiletypes) {
			return nil, fmt.Errorf("tile %d at (%d,%d) is outside palette of %d types",
				t, i%width, i/width, len(tiletypes))
		}
	}

	m := &Map{
		Width:     width,
		Height:    height,
		tiletypes: append([]TileType(nil), tiletypes...),
		Tiles:     tiles,
	}
	m.buildSpace()
	return m, nil
}

// TileIndex - индекс клетки в плоском массиве.
func (m *Map) TileIndex(x, y int) int {
	return y*m.Width + x
}

// InBounds проверяет границы [0,Width) x [0,Height).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt возвращает индекс клетки или false вне карты.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.Tiles[m.TileIndex(x, y)], true
}

// Tile возвращает вид клетки или false вне карты.
func (m *Map) Tile(x, y int) (*TileType, bool) {
	tile, ok := m.TileAt(x, y)
	if !ok {
		return nil, false
	}
	return &m.tiletypes[tile], true
}

// TileF - то же по дробным координатам (округление вниз).
func (m *Map) TileF(x, y float64) (*TileType, bool) {
	fx, fy := math.Floor(x), math.Floor(y)
	// Сравниваем во float, чтобы огромные значения не переполнили int
	if !(fx >= 0 && fx < float64(m.Width) && fy >= 0 && fy < float64(m.Height)) {
		return nil, false
	}
	return m.Tile(int(fx), int(fy))
}

// TileAtPos - вид клетки под точкой мира.
func (m *Map) TileAtPos(pos vecmath.Vector2) (*TileType, bool) {
	return m.TileF(pos.X, pos.Y)
}

// TileTypes возвращает копию палитры.
func (m *Map) TileTypes() []TileType {
	return append([]TileType(nil), m.tiletypes...)
}

// Collides - true для клеток с Collide и для всего, что вне карты.
func (m *Map) Collides(x, y int) bool {
	tt, ok := m.Tile(x, y)
	return !ok || tt.Collide
}
