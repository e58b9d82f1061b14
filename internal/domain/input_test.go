package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerInput_Axes(t *testing.T) {
	tests := []struct {
		name  string
		input PlayerInput
		x, y  float64
		jump  bool
	}{
		{"idle", PlayerInput{}, 0, 0, false},
		{"digital right", PlayerInput{Right: true}, 1, 0, false},
		{"digital left", PlayerInput{Left: true}, -1, 0, false},
		{"right against analog left", PlayerInput{Right: true, AxisX: -0.5}, 0.5, 0, false},
		{"left against analog right", PlayerInput{Left: true, AxisX: 0.5}, -0.5, 0, false},
		{"right with analog right saturates", PlayerInput{Right: true, AxisX: 0.5}, 1, 0, false},
		{"both cancel to analog", PlayerInput{Left: true, Right: true, AxisX: 0.25}, 0.25, 0, false},
		{"both cancel without analog", PlayerInput{Left: true, Right: true}, 0, 0, false},
		{"down against analog up", PlayerInput{Down: true, AxisY: 0.75}, 0, -0.25, false},
		{"nan axis with button", PlayerInput{Right: true, AxisX: math.NaN()}, 1, 0, false},
		{"analog clamped", PlayerInput{AxisX: 3, AxisY: -2}, 1, -1, false},
		{"digital up jumps", PlayerInput{Up: true}, 0, 1, true},
		{"analog above threshold", PlayerInput{AxisY: 0.81}, 0, 0.81, true},
		{"analog at threshold", PlayerInput{AxisY: 0.8}, 0, 0.8, false},
		{"nan axis", PlayerInput{AxisX: math.NaN()}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.x, tt.input.X())
			assert.Equal(t, tt.y, tt.input.Y())
			assert.Equal(t, tt.jump, tt.input.Jump())
		})
	}
}

func TestInputSnapshot_Player(t *testing.T) {
	s := InputSnapshot{Players: []PlayerInput{{Right: true}}}

	assert.True(t, s.Player(0).Right)
	assert.Equal(t, PlayerInput{}, s.Player(1))
	assert.Equal(t, PlayerInput{}, s.Player(-1))

	c := s.Clone()
	c.Players[0].Right = false
	assert.True(t, s.Players[0].Right)
}

func TestPlayerInput_Clamped(t *testing.T) {
	p := PlayerInput{AxisX: -5, AxisY: math.NaN()}.Clamped()
	assert.Equal(t, -1.0, p.AxisX)
	assert.Equal(t, 0.0, p.AxisY)
}
