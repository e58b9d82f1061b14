package agent

import (
	"encoding/binary"
	"math"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/entities"
	"fluffy-fiesta/internal/systems"
	"fluffy-fiesta/pkg/utils"
	"fluffy-fiesta/pkg/vecmath"

	"github.com/cespare/xxhash/v2"
)

const (
	// SegmentTicks - сколько тиков бот держит одно решение.
	SegmentTicks = 40
	// SightRange - дальше этого бот противника не замечает, в клетках.
	SightRange = 15.0
	// heightBand - снаряды летят горизонтально, выше или ниже стрелять бесполезно.
	heightBand = 0.8
)

// Autopilot играет за слоты без живого игрока.
// Без наблюдения мира ввод зависит только от (seed, slot, tick).
// С наблюдением бот ещё и стреляет в видимых противников. Мир детерминирован,
// так что и такой ввод повторяется от запуска к запуску.
type Autopilot struct {
	seed int64

	world     *domain.Map
	positions map[int]vecmath.Vector2
}

func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{
		seed:      utils.DeriveSeed(seed, "autopilot"),
		positions: make(map[int]vecmath.Vector2),
	}
}

// Observe запоминает, где стоят персонажи. Вызывается до сбора ввода тика.
func (a *Autopilot) Observe(w *domain.World) {
	a.world = w.Map
	clear(a.positions)
	for _, e := range w.Entities() {
		if c, ok := e.Logic.(*entities.Character); ok {
			a.positions[c.Slot] = e.Physics.Pos.Add(vecmath.Vec(0, entities.CharacterBody.Height/2))
		}
	}
}

// Input реализует engine.InputSource.
func (a *Autopilot) Input(slot int, tick uint64) domain.PlayerInput {
	segment := a.roll(slot, tick/SegmentTicks)
	step := a.roll(slot, tick)

	var in domain.PlayerInput
	// 1. Направление на весь отрезок: влево, стоим, вправо
	switch segment % 3 {
	case 0:
		in.Left = true
	case 2:
		in.Right = true
	}

	// 2. Иногда прыгаем
	in.Up = step%16 == 0

	// 3. Стреляем очередями во второй половине отрезка
	in.Fire = (segment>>8)%2 == 0 && tick%SegmentTicks >= SegmentTicks/2

	// 4. Видим противника - поворачиваемся к нему и стреляем
	if dir, ok := a.target(slot); ok {
		in.Left, in.Right = dir < 0, dir > 0
		in.Fire = true
	}

	return in
}

// target - направление на ближайшего видимого противника.
func (a *Autopilot) target(slot int) (float64, bool) {
	me, ok := a.positions[slot]
	if !ok || a.world == nil {
		return 0, false
	}

	best, bestDist := 0.0, math.Inf(1)
	for other, pos := range a.positions {
		if other == slot {
			continue
		}
		d := pos.Sub(me)
		if math.Abs(d.Y) > heightBand || math.Abs(d.X) > SightRange || d.X == 0 {
			continue
		}
		// При равных расстояниях берём цель слева, чтобы не зависеть от порядка обхода map
		dist := math.Abs(d.X)
		if dist > bestDist || (dist == bestDist && d.X > best) {
			continue
		}
		if !systems.LineOfSight(a.world, me, pos) {
			continue
		}
		best, bestDist = d.X, dist
	}
	return best, !math.IsInf(bestDist, 1)
}

func (a *Autopilot) roll(slot int, n uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(a.seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(slot))
	binary.LittleEndian.PutUint64(buf[16:], n)
	return xxhash.Sum64(buf[:])
}
