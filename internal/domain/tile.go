package domain

import "fluffy-fiesta/internal/sprites"

// Tile - клетка карты, просто индекс в палитре TileType.
type Tile uint16

// TileType - описание вида клетки.
type TileType struct {
	Name string `json:"name"`
	// Sprite для отрисовки клетки.
	Sprite *sprites.Sprite `json:"-"`
	// Damage - урон в секунду от касания клетки.
	Damage float64 `json:"damage"`
	// Collide - сущности сталкиваются с клеткой, а не проходят сквозь.
	Collide bool `json:"collide"`
	// HasEntity - для каждой клетки этого вида создаётся тайловая сущность.
	HasEntity bool `json:"hasEntity"`
}

// TileCoord - целочисленные координаты клетки.
type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}
