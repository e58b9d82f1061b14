package domain

import "math"

// InputThreshold - порог аналоговой оси для прыжка.
const InputThreshold = 0.8

// PlayerInput - состояние контроллера одного игрока.
type PlayerInput struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Fire  bool `json:"fire"`

	// Аналоговые оси, ожидаются в [-1, 1].
	AxisX float64 `json:"axisX"`
	AxisY float64 `json:"axisY"`
}

// X - горизонтальное управление в [-1, 1]. Кнопки складываются с осью.
func (p PlayerInput) X() float64 {
	return axis(p.AxisX, p.Left, p.Right)
}

// Y - вертикальное управление в [-1, 1].
func (p PlayerInput) Y() float64 {
	return axis(p.AxisY, p.Down, p.Up)
}

// Jump - цифровой "вверх" или ось Y за порогом.
func (p PlayerInput) Jump() bool {
	return p.Up || p.AxisY > InputThreshold
}

// Clamped возвращает копию с осями в [-1, 1]. NaN становится нулём.
func (p PlayerInput) Clamped() PlayerInput {
	p.AxisX = Clamp(p.AxisX)
	p.AxisY = Clamp(p.AxisY)
	return p
}

// Clamp ограничивает значение оси отрезком [-1, 1].
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

func axis(analog float64, neg, pos bool) float64 {
	return Clamp(Clamp(analog) + b2f(pos) - b2f(neg))
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// InputSnapshot - ввод всех игроков на один тик.
type InputSnapshot struct {
	Players []PlayerInput `json:"players"`
}

// Player возвращает ввод слота или нулевой ввод, если слота нет.
func (s InputSnapshot) Player(slot int) PlayerInput {
	if slot < 0 || slot >= len(s.Players) {
		return PlayerInput{}
	}
	return s.Players[slot]
}

// Clone - глубокая копия.
func (s InputSnapshot) Clone() InputSnapshot {
	return InputSnapshot{Players: append([]PlayerInput(nil), s.Players...)}
}
