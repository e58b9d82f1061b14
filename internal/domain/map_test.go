package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap(t *testing.T) *Map {
	t.Helper()
	types := []TileType{
		{Name: "air"},
		{Name: "wall", Collide: true},
		{Name: "lava", Damage: 10},
	}
	// 4x3, нижний ряд - стена
	tiles := []Tile{
		1, 1, 2, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	m, err := NewMap(4, 3, types, tiles)
	require.NoError(t, err)
	return m
}

func TestNewMap_Validation(t *testing.T) {
	types := []TileType{{Name: "air"}}

	_, err := NewMap(2, 2, types, []Tile{0, 0, 0})
	assert.Error(t, err, "wrong cell count")

	_, err = NewMap(2, 1, types, []Tile{0, 1})
	assert.Error(t, err, "index outside palette")

	_, err = NewMap(0, 1, types, nil)
	assert.Error(t, err)

	m, err := NewMap(2, 1, types, []Tile{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width)
}

func TestMap_TileBounds(t *testing.T) {
	m := testMap(t)

	tests := []struct {
		x, y int
		ok   bool
		name string
	}{
		{0, 0, true, "wall"},
		{2, 0, true, "lava"},
		{3, 2, true, "air"},
		{-1, 0, false, ""},
		{0, -1, false, ""},
		{4, 0, false, ""},
		{0, 3, false, ""},
	}

	for _, tt := range tests {
		tt2, ok := m.Tile(tt.x, tt.y)
		require.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		if ok {
			assert.Equal(t, tt.name, tt2.Name)
		}
	}
}

func TestMap_TileFMatchesFloor(t *testing.T) {
	m := testMap(t)

	points := []float64{-1.5, -0.01, 0, 0.5, 0.99, 1, 2.7, 3.999, 4, 100, math.Inf(1), math.NaN(), 1e300}
	for _, x := range points {
		for _, y := range points {
			got, okF := m.TileF(x, y)
			var want *TileType
			okI := false
			if !math.IsNaN(x) && !math.IsNaN(y) && math.Abs(x) < 1e9 && math.Abs(y) < 1e9 {
				want, okI = m.Tile(int(math.Floor(x)), int(math.Floor(y)))
			}
			require.Equal(t, okI, okF, "TileF(%v,%v)", x, y)
			assert.Equal(t, want, got)
		}
	}
}

func TestMap_TileTypesIsCopy(t *testing.T) {
	m := testMap(t)

	types := m.TileTypes()
	types[0].Name = "changed"

	tt, _ := m.Tile(0, 1)
	assert.Equal(t, "air", tt.Name)
}

func TestMap_Collides(t *testing.T) {
	m := testMap(t)

	assert.True(t, m.Collides(0, 0))
	assert.False(t, m.Collides(0, 1))
	assert.True(t, m.Collides(-1, 1), "outside the map collides")
}

func TestMap_SpaceMirrorsSolidTiles(t *testing.T) {
	m := testMap(t)
	space := m.Space()
	require.NotNil(t, space)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := space.Cell(x, y)
			require.NotNil(t, cell, "(%d,%d)", x, y)
			if m.Collides(x, y) {
				require.Len(t, cell.Objects, 1, "(%d,%d)", x, y)
				assert.True(t, cell.Objects[0].HasTags(TagSolid))
			} else {
				assert.Empty(t, cell.Objects, "(%d,%d)", x, y)
			}
		}
	}
}
