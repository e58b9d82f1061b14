package level

import (
	"math/rand"

	"fluffy-fiesta/internal/animation"
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/entities"
	"fluffy-fiesta/pkg/vecmath"
)

// Индексы палитры стандартных карт
const (
	TileWall domain.Tile = iota
	TileBackground
	TileSky
	TileLava
)

// Размер стандартных карт
const (
	ExampleWidth  = 100
	ExampleHeight = 100
)

// DefaultTileTypes - палитра стандартных карт.
func DefaultTileTypes() []TileTypeDefinition {
	return []TileTypeDefinition{
		{Name: "wall", SpriteSheet: "map/castleCenter.png", SpriteCoords: [4]int{0, 0, 256, 256}, Collide: true},
		{Name: "background", SpriteSheet: "map/bg_castle.png", SpriteCoords: [4]int{0, 0, 256, 256}},
		{Name: "sky", SpriteSheet: "map/bg.png", SpriteCoords: [4]int{0, 0, 256, 256}},
		{Name: "lava", SpriteSheet: "map/liquidLava.png", SpriteCoords: [4]int{0, 0, 256, 256}, Damage: 1},
	}
}

// DefaultSheets - размеры всех листов, нужных стандартным картам.
func DefaultSheets() map[string][2]int {
	sheets := map[string][2]int{
		animation.CharacterSheetName: {8 * animation.CharacterCell, 10 * animation.CharacterCell},
		entities.ProjectileSheetName: {16, 16},
	}
	for _, def := range DefaultTileTypes() {
		sheets[def.SpriteSheet] = [2]int{256, 256}
	}
	return sheets
}

// Example - встроенная карта: замок 100x100 с лавой внизу и четырьмя
// точками спавна.
func Example() *MapFactory {
	b := NewLevel(ExampleWidth, ExampleHeight).
		WithTileTypes(DefaultTileTypes()...).
		Fill(TileBackground).
		FillRect(Rect{X: 0, Y: 70, W: ExampleWidth, H: ExampleHeight - 70}, TileSky).
		Border(TileWall).
		Row(0, 40, 60, TileLava)

	// Столбики на полу
	for i := 0; i < 19; i++ {
		b.Set(2+5*i, 1, TileWall)
	}

	for _, x := range []float64{15, 25, 75, 85} {
		b.Spawn(domain.TypeIDSpawn, vecmath.Vec(x, 1))
	}

	return b.Players(4).Build()
}

// Generate - случайная арена по зерну: рамка, лава и платформы.
func Generate(seed int64, players int) *MapFactory {
	rng := rand.New(rand.NewSource(seed))

	b := NewLevel(ExampleWidth, ExampleHeight/2).
		WithTileTypes(DefaultTileTypes()...).
		Fill(TileBackground).
		Border(TileWall)

	lava := randRange(rng, 10, ExampleWidth-30)
	b.Row(0, lava, lava+15, TileLava)
	b.Spawn(domain.TypeIDSpawn, vecmath.Vec(5, 1))
	b.Spawn(domain.TypeIDSpawn, vecmath.Vec(ExampleWidth-5, 1))

	return b.Platforms(rng, 12, 4, 10, TileWall).
		Players(players).
		Build()
}
