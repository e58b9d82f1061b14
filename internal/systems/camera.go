package systems

import (
	"errors"
	"math"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/vecmath"
)

// Поля вокруг прямоугольника фокуса, в клетках.
const (
	FocusMarginX = 4.0
	FocusMarginY = 3.0
)

// Значения по умолчанию для хоста.
const (
	DefaultAspectRatio = 9.0 / 16.0
	DefaultCameraRate  = 0.1
)

var (
	ErrInvalidCameraRate  = errors.New("camera update rate must be in [0, 1]")
	ErrInvalidAspectRatio = errors.New("camera aspect ratio must be positive")
)

// Camera - окно мира, которое видит рендерер.
//
// AspectRatio - высота окна, делённая на ширину. Pos - левый нижний угол
// окна, Size - его ширина в клетках (высота = Size * AspectRatio).
type Camera struct {
	AspectRatio float64         `json:"aspectRatio"`
	Pos         vecmath.Vector2 `json:"pos"`
	Size        float64         `json:"size"`
	UpdateRate  float64         `json:"updateRate"`
}

// NewCamera проверяет параметры и создаёт камеру.
func NewCamera(aspectRatio, updateRate float64, pos vecmath.Vector2, size float64) (*Camera, error) {
	if !(updateRate >= 0 && updateRate <= 1) {
		return nil, ErrInvalidCameraRate
	}
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 0) {
		return nil, ErrInvalidAspectRatio
	}
	return &Camera{
		AspectRatio: aspectRatio,
		Pos:         pos,
		Size:        size,
		UpdateRate:  updateRate,
	}, nil
}

// Desired вычисляет целевое окно для прямоугольника фокуса.
func (c *Camera) Desired(focus domain.FocusBox) (pos vecmath.Vector2, size float64, ok bool) {
	min, max, ok := focus.Bounds()
	if !ok {
		return c.Pos, c.Size, false
	}

	// 1. Поля
	margin := vecmath.Vec(FocusMarginX, FocusMarginY)
	min = min.Sub(margin)
	max = max.Add(margin)

	// 2. Вписываем прямоугольник в окно с нашим соотношением сторон
	width := max.X - min.X
	height := max.Y - min.Y
	size = math.Max(width, height/c.AspectRatio)

	// 3. Центрируем
	center := min.Add(max).Scale(0.5)
	pos = center.Sub(vecmath.Vec(size/2, size*c.AspectRatio/2))
	return pos, size, true
}

// Update сглаженно двигает камеру к целевому окну.
// Если фокуса за тик не было, камера не меняется.
func (c *Camera) Update(focus domain.FocusBox) bool {
	pos, size, ok := c.Desired(focus)
	if !ok {
		return false
	}
	c.Pos = vecmath.Lerp(c.Pos, pos, c.UpdateRate)
	c.Size = c.Size*(1-c.UpdateRate) + size*c.UpdateRate
	return true
}

// Viewport - видимый прямоугольник мира.
func (c *Camera) Viewport() (min, max vecmath.Vector2) {
	return c.Pos, c.Pos.Add(vecmath.Vec(c.Size, c.Size*c.AspectRatio))
}
