// Package vecmath - тонкая обёртка над mgl64 для 2D-математики симуляции.
// Y растёт вверх, как и строки карты.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 - пара координат. Значимый тип, копируется дёшево.
// Арифметика делегируется mgl64.Vec2, поля нужны для JSON и YAML.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero - нулевой вектор.
var Zero = Vector2{}

// Vec создаёт вектор из компонент.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromGL переводит вектор mgl64 в Vector2.
func FromGL(v mgl64.Vec2) Vector2 {
	return Vector2{X: v.X(), Y: v.Y()}
}

// GL - тот же вектор в виде mgl64.Vec2.
func (v Vector2) GL() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return FromGL(v.GL().Add(o.GL()))
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return FromGL(v.GL().Sub(o.GL()))
}

// Scale умножает обе компоненты на k.
func (v Vector2) Scale(k float64) Vector2 {
	return FromGL(v.GL().Mul(k))
}

// Mul - покомпонентное произведение.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Floor округляет обе компоненты вниз.
func (v Vector2) Floor() Vector2 {
	return Vector2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Len - евклидова длина.
func (v Vector2) Len() float64 {
	return v.GL().Len()
}

// ApproxEqual сравнивает с допуском mgl64.
func (v Vector2) ApproxEqual(o Vector2) bool {
	return v.GL().ApproxEqual(o.GL())
}

// Min - покомпонентный минимум.
func Min(a, b Vector2) Vector2 {
	return Vector2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// Max - покомпонентный максимум.
func Max(a, b Vector2) Vector2 {
	return Vector2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Lerp интерполирует от a к b с весом t: a*(1-t) + b*t.
func Lerp(a, b Vector2, t float64) Vector2 {
	return FromGL(a.GL().Mul(1 - t).Add(b.GL().Mul(t)))
}
