package level

import (
	"errors"
	"fmt"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/entities"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/sirupsen/logrus"
)

// ErrNoPlayers - карта без игроков не имеет смысла.
var ErrNoPlayers = errors.New("map needs at least one player")

// TileEntityFactory создаёт сущность для клетки или nil.
type TileEntityFactory func(tile domain.Tile, tt *domain.TileType, coord domain.TileCoord, kit *entities.Kit) *domain.Entity

// TileTypeDefinition - описание вида клетки в определении карты.
type TileTypeDefinition struct {
	Name         string
	SpriteSheet  string
	SpriteCoords [4]int
	Damage       float64
	Collide      bool
	TileEntity   TileEntityFactory
}

// EntityDefinition - сущность, размещённая на карте.
type EntityDefinition struct {
	TypeID   string
	Position vecmath.Vector2
}

// MapFactory - исходное определение карты. Create превращает его в мир.
type MapFactory struct {
	Width     int
	Height    int
	NbPlayers int
	TileTypes []TileTypeDefinition
	Tiles     []domain.Tile
	Entities  []EntityDefinition
}

// Level - созданный мир и ресурсы, которые понадобятся его сущностям.
type Level struct {
	World   *domain.World
	Kit     *entities.Kit
	Seed    int64
	Players int
}

// Create строит живой мир. Одинаковые seed и определение дают одинаковый мир.
func (f *MapFactory) Create(seed int64, mgr *sprites.Manager) (*Level, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "level",
		"seed":      seed,
	})

	// 1. Проверки
	if f.NbPlayers < 1 {
		return nil, ErrNoPlayers
	}

	// 2. Палитра со спрайтами
	tiletypes := make([]domain.TileType, len(f.TileTypes))
	for i, def := range f.TileTypes {
		sheet, err := mgr.Load(def.SpriteSheet)
		if err != nil {
			return nil, fmt.Errorf("tile type %q: %w", def.Name, err)
		}
		tiletypes[i] = domain.TileType{
			Name: def.Name,
			Sprite: &sprites.Sprite{
				Sheet:  sheet,
				Coords: def.SpriteCoords,
				Size:   vecmath.Vec(1, 1),
			},
			Damage:    def.Damage,
			Collide:   def.Collide,
			HasEntity: def.TileEntity != nil,
		}
	}

	m, err := domain.NewMap(f.Width, f.Height, tiletypes, append([]domain.Tile(nil), f.Tiles...))
	if err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	kit, err := entities.NewKit(mgr, seed)
	if err != nil {
		return nil, err
	}
	w := domain.NewWorld(m)

	// 3. Тайловые сущности
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.TileAt(x, y)
			def := f.TileTypes[tile]
			if def.TileEntity == nil {
				continue
			}
			coord := domain.TileCoord{X: x, Y: y}
			if e := def.TileEntity(tile, &tiletypes[tile], coord, kit); e != nil {
				w.SetTileEntity(coord, e)
			}
		}
	}

	// 4. Сущности из определения
	for _, def := range f.Entities {
		kind := domain.ParseEntityKind(def.TypeID)
		logic, ok := kit.Create(kind)
		if !ok {
			log.WithField("type_id", def.TypeID).Warn("Can't create unknown entity type")
			continue
		}
		w.Add(domain.NewEntity(def.Position, logic))
	}

	// 5. Игроки приходят через очередь порождения
	for slot := 0; slot < f.NbPlayers; slot++ {
		w.Enqueue(domain.NewOneShot(kit.NewCharacter(slot)))
	}

	log.WithFields(logrus.Fields{
		"width":         f.Width,
		"height":        f.Height,
		"entities":      w.Len(),
		"tile_entities": w.TileEntityCount(),
		"players":       f.NbPlayers,
	}).Info("World created")

	return &Level{World: w, Kit: kit, Seed: seed, Players: f.NbPlayers}, nil
}
