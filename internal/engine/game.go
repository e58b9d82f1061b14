package engine

import (
	"encoding/json"
	"fmt"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/entities"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/internal/systems"
	"fluffy-fiesta/pkg/api"
	"fluffy-fiesta/pkg/level"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

// Game - одна симуляция: мир, камера и системы.
// Не потокобезопасна, тики идут из одной горутины.
type Game struct {
	cfg     Config
	level   *level.Level
	world   *domain.World
	camera  *systems.Camera
	sprites *sprites.Manager
	spawner systems.SpawnSystem

	tick uint64
	time float64
	last *domain.UpdateReport
}

// NewGame собирает мир из factory. Листы спрайтов берутся из source.
func NewGame(cfg Config, factory *level.MapFactory, source sprites.Source) (*Game, error) {
	mgr := sprites.NewManager(source)

	lvl, err := factory.Create(cfg.Seed, mgr)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	// Камера стартует, показывая карту целиком
	cam, err := systems.NewCamera(cfg.AspectRatio, cfg.CameraRate, vecmath.Zero, float64(factory.Width))
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		level:   lvl,
		world:   lvl.World,
		camera:  cam,
		sprites: mgr,
	}, nil
}

// StepReport - что произошло за тик.
type StepReport struct {
	Tick     uint64
	Update   *domain.UpdateReport
	Spawned  domain.EntityID
	Animated int
}

// Step продвигает симуляцию на dt:
// ввод -> обновление сущностей -> порождение -> камера -> анимации.
func (g *Game) Step(dt float64, input domain.InputSnapshot) StepReport {
	// 1. Каждая сущность делает свой ход
	update := g.world.UpdateEntities(dt, input)

	// 2. Очередь порождения
	spawned, _ := g.spawner.Run(g.world, update.SpawnPoints, g.tick)

	// 3. Камера следует за фокусом
	g.camera.Update(update.Focus)

	// 4. Анимации
	animated := systems.AdvanceAnimations(g.world, dt)

	report := StepReport{Tick: g.tick, Update: update, Spawned: spawned, Animated: animated}
	g.tick++
	g.time += dt
	g.last = update

	if logger.DebugEnabled() && (len(update.Removed) > 0 || !spawned.IsNil()) {
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"tick":      report.Tick,
			"removed":   len(update.Removed),
			"added":     len(update.Added),
			"spawned":   spawned.String(),
		}).Debug("tick")
	}
	return report
}

func (g *Game) Tick() uint64 {
	return g.tick
}

func (g *Game) World() *domain.World {
	return g.world
}

func (g *Game) Camera() systems.Camera {
	return *g.camera
}

func (g *Game) Level() *level.Level {
	return g.level
}

// Snapshot - состояние на конец последнего тика.
func (g *Game) Snapshot() api.WorldSnapshot {
	world := g.world
	snap := api.WorldSnapshot{
		Tick:       g.tick,
		Time:       g.time,
		Grid:       api.GridMeta{Width: world.Map.Width, Height: world.Map.Height},
		Camera:     api.CameraView{Pos: g.camera.Pos, Size: g.camera.Size, AspectRatio: g.camera.AspectRatio},
		Entities:   make([]api.EntityView, 0, world.Len()),
		Spawnables: world.SpawnableCount(),
	}

	for _, e := range world.Entities() {
		view := api.EntityView{
			ID:     e.ID.String(),
			Kind:   e.Kind().String(),
			Pos:    e.Physics.Pos,
			Speed:  e.Physics.Speed,
			Sprite: spriteView(e.Sprite),
		}
		if c, ok := e.Logic.(*entities.Character); ok {
			health, slot := c.Health, c.Slot
			view.Health = &health
			view.Slot = &slot
		}
		snap.Entities = append(snap.Entities, view)
	}
	return snap
}

// MapView - карта целиком для новых клиентов.
func (g *Game) MapView() *api.MapView {
	m := g.world.Map
	view := &api.MapView{
		Grid:  api.GridMeta{Width: m.Width, Height: m.Height},
		Tiles: make([]uint16, len(m.Tiles)),
	}
	for i, t := range m.Tiles {
		view.Tiles[i] = uint16(t)
	}
	for _, tt := range m.TileTypes() {
		view.Types = append(view.Types, api.TileTypeView{
			Name:    tt.Name,
			Sprite:  spriteView(tt.Sprite),
			Damage:  tt.Damage,
			Collide: tt.Collide,
		})
	}
	return view
}

// Digest - хэш снимка. Одинаковые сид и ввод дают одинаковый хэш.
func (g *Game) Digest() uint64 {
	return DigestOf(g.Snapshot())
}

// DigestOf хэширует снимок.
func DigestOf(snap api.WorldSnapshot) uint64 {
	d := xxhash.New()
	if err := json.NewEncoder(d).Encode(snap); err != nil {
		// Снимок состоит из простых типов, ошибка тут - баг
		panic(fmt.Sprintf("engine: snapshot encode: %v", err))
	}
	return d.Sum64()
}

func spriteView(s *sprites.Sprite) *api.SpriteView {
	if s == nil {
		return nil
	}
	return &api.SpriteView{Sheet: s.SheetName(), Coords: s.Coords, Size: s.Size}
}
