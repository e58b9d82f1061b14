package level

import (
	"math/rand"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/vecmath"
)

// Rect - прямоугольник клеток
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// LevelBuilder предоставляет fluent API для создания карт.
// Координаты за пределами карты молча отбрасываются.
type LevelBuilder struct {
	width     int
	height    int
	tiletypes []TileTypeDefinition
	tiles     []domain.Tile
	entities  []EntityDefinition
	platforms []Rect
	players   int
}

// NewLevel создает новый builder для карты width x height
func NewLevel(width, height int) *LevelBuilder {
	return &LevelBuilder{
		width:   width,
		height:  height,
		tiles:   make([]domain.Tile, width*height),
		players: 1,
	}
}

// WithTileTypes задаёт палитру. Индекс в списке - значение Tile.
func (b *LevelBuilder) WithTileTypes(defs ...TileTypeDefinition) *LevelBuilder {
	b.tiletypes = append(b.tiletypes, defs...)
	return b
}

// Set ставит одну клетку
func (b *LevelBuilder) Set(x, y int, t domain.Tile) *LevelBuilder {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.tiles[y*b.width+x] = t
	}
	return b
}

// Fill заливает всю карту
func (b *LevelBuilder) Fill(t domain.Tile) *LevelBuilder {
	for i := range b.tiles {
		b.tiles[i] = t
	}
	return b
}

// FillRect заливает прямоугольник
func (b *LevelBuilder) FillRect(r Rect, t domain.Tile) *LevelBuilder {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, t)
		}
	}
	return b
}

// Row заливает клетки [x0, x1) в ряду y
func (b *LevelBuilder) Row(y, x0, x1 int, t domain.Tile) *LevelBuilder {
	return b.FillRect(Rect{X: x0, Y: y, W: x1 - x0, H: 1}, t)
}

// Border обводит карту рамкой
func (b *LevelBuilder) Border(t domain.Tile) *LevelBuilder {
	for i := 0; i < b.width; i++ {
		b.Set(i, 0, t)
		b.Set(i, b.height-1, t)
	}
	for i := 0; i < b.height; i++ {
		b.Set(0, i, t)
		b.Set(b.width-1, i, t)
	}
	return b
}

// Platforms раскидывает до count непересекающихся платформ толщиной в одну
// клетку. Над каждой платформой ставится точка спавна.
func (b *LevelBuilder) Platforms(rng *rand.Rand, count, minW, maxW int, t domain.Tile) *LevelBuilder {
	if b.width < maxW+4 || b.height < 8 {
		return b
	}

	for i := 0; i < count; i++ {
		w := randRange(rng, minW, maxW)
		x := randRange(rng, 2, b.width-w-2)
		y := randRange(rng, 3, b.height-4)

		// Запас по высоте, чтобы под платформой можно было пройти
		p := Rect{X: x, Y: y, W: w, H: 1}
		failed := false
		for _, other := range b.platforms {
			if p.Intersects(Rect{X: other.X - 1, Y: other.Y - 2, W: other.W + 2, H: other.H + 4}) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.FillRect(p, t)
		b.platforms = append(b.platforms, p)

		cx, _ := p.Center()
		b.Spawn(domain.TypeIDSpawn, vecmath.Vec(float64(cx)+0.5, float64(y+1)))
	}
	return b
}

// Spawn размещает сущность по type id
func (b *LevelBuilder) Spawn(typeID string, pos vecmath.Vector2) *LevelBuilder {
	b.entities = append(b.entities, EntityDefinition{TypeID: typeID, Position: pos})
	return b
}

// Players задаёт число игроков
func (b *LevelBuilder) Players(n int) *LevelBuilder {
	b.players = n
	return b
}

// PlatformRects - платформы, поставленные Platforms.
func (b *LevelBuilder) PlatformRects() []Rect {
	return append([]Rect(nil), b.platforms...)
}

// Build собирает определение карты
func (b *LevelBuilder) Build() *MapFactory {
	return &MapFactory{
		Width:     b.width,
		Height:    b.height,
		NbPlayers: b.players,
		TileTypes: append([]TileTypeDefinition(nil), b.tiletypes...),
		Tiles:     append([]domain.Tile(nil), b.tiles...),
		Entities:  append([]EntityDefinition(nil), b.entities...),
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
