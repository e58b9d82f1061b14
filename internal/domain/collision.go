package domain

import "github.com/solarlune/resolv"

// SpaceUnit - единиц resolv в одной клетке. Границы объектов resolv
// считает в целых единицах, поэтому клетка берётся крупной.
const SpaceUnit = 1_000_000

// TagSolid помечает твёрдые клетки в пространстве карты.
const TagSolid = "solid"

// ToSpace переводит клетки в единицы resolv.
func ToSpace(v float64) float64 {
	return v * SpaceUnit
}

func (m *Map) buildSpace() {
	m.space = resolv.NewSpace(m.Width*SpaceUnit, m.Height*SpaceUnit, SpaceUnit, SpaceUnit)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if tt, _ := m.Tile(x, y); tt.Collide {
				m.space.Add(resolv.NewObject(ToSpace(float64(x)), ToSpace(float64(y)), SpaceUnit, SpaceUnit, TagSolid))
			}
		}
	}
}

// Space - пространство resolv с одной клеткой на клетку карты.
// Края карты в нём не представлены: выход за карту проверяет вызывающий.
func (m *Map) Space() *resolv.Space {
	return m.space
}
