package systems

import (
	"math"

	"github.com/solarlune/resolv"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/pkg/vecmath"
)

// Gravity - ускорение свободного падения, клеток/с².
const Gravity = 30.0

// maxStep - наибольшее смещение за один подшаг, чтобы не проскакивать клетки.
const maxStep = 0.45

const edgeEpsilon = 1e-6

// Body - размер тела сущности. Pos сущности - середина нижней грани.
type Body struct {
	HalfWidth float64
	Height    float64
}

// MovementResult - результат интегрирования движения
type MovementResult struct {
	HasMoved bool
	Grounded bool // Стоит на твёрдой клетке
	BlockedX bool // Упёрлись в стену по горизонтали
	BlockedY bool // Упёрлись в пол или потолок
	// Damage - наибольший урон среди клеток, которых касается тело.
	Damage float64
	// OutOfMap - тело касается области за картой.
	OutOfMap bool
}

// Integrate сдвигает p на Speed*dt, разрешая столкновения с клетками по
// осям раздельно. Скорость по оси, где было столкновение, обнуляется.
func Integrate(p *domain.EntityPhysics, body Body, dt float64, m *domain.Map) MovementResult {
	var res MovementResult
	start := p.Pos

	c := newCollider(m, p.Pos, body)
	defer c.release()

	delta := p.Speed.Scale(dt)
	steps := int(math.Ceil(math.Max(math.Abs(delta.X), math.Abs(delta.Y)) / maxStep))
	if steps < 1 {
		steps = 1
	}
	step := delta.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		// 1. Горизонталь
		if step.X != 0 && !res.BlockedX {
			x, blocked := c.moveAxisX(p.Pos, step.X)
			p.Pos.X = x
			if blocked {
				p.Speed.X = 0
				res.BlockedX = true
			}
			c.moveTo(p.Pos)
		}

		// 2. Вертикаль
		if step.Y != 0 && !res.BlockedY {
			y, blocked := c.moveAxisY(p.Pos, step.Y)
			p.Pos.Y = y
			if blocked {
				if step.Y < 0 {
					res.Grounded = true
				}
				p.Speed.Y = 0
				res.BlockedY = true
			}
			c.moveTo(p.Pos)
		}
	}

	// 3. Опора под ногами, даже если не двигались
	if !res.Grounded && p.Speed.Y <= 0 {
		res.Grounded = c.blocked(p.Pos.Sub(vecmath.Vec(0, 2*edgeEpsilon+0.01)))
	}

	res.HasMoved = p.Pos != start
	res.Damage, res.OutOfMap = touchedTiles(p.Pos, body, m)
	return res
}

// collider - тело как объект resolv в пространстве карты на время
// одного Integrate.
type collider struct {
	m    *domain.Map
	body Body
	obj  *resolv.Object
}

func newCollider(m *domain.Map, pos vecmath.Vector2, body Body) *collider {
	c := &collider{
		m:    m,
		body: body,
		obj: resolv.NewObject(0, 0,
			domain.ToSpace(2*body.HalfWidth), domain.ToSpace(body.Height)),
	}
	c.place(pos)
	m.Space().Add(c.obj)
	return c
}

func (c *collider) release() {
	c.m.Space().Remove(c.obj)
}

func (c *collider) place(pos vecmath.Vector2) {
	c.obj.X = domain.ToSpace(pos.X - c.body.HalfWidth)
	c.obj.Y = domain.ToSpace(pos.Y)
}

func (c *collider) moveTo(pos vecmath.Vector2) {
	c.place(pos)
	c.obj.Update()
}

// blocked - упрётся ли тело в позиции at в твёрдую клетку или край карты.
// Объект проверяется на месте at и возвращается туда, где стоял.
func (c *collider) blocked(at vecmath.Vector2) bool {
	if !inside(at, c.body, c.m) {
		return true
	}
	x, y := c.obj.X, c.obj.Y
	c.place(at)
	hit := c.obj.Check(0, 0, domain.TagSolid)
	c.obj.X, c.obj.Y = x, y
	return hit != nil
}

func (c *collider) moveAxisX(pos vecmath.Vector2, dx float64) (float64, bool) {
	if !c.blocked(vecmath.Vec(pos.X+dx, pos.Y)) {
		return pos.X + dx, false
	}
	if dx > 0 {
		right := math.Floor(pos.X + dx + c.body.HalfWidth)
		snapped := right - c.body.HalfWidth - edgeEpsilon
		if snapped >= pos.X && !c.blocked(vecmath.Vec(snapped, pos.Y)) {
			return snapped, true
		}
	} else {
		left := math.Floor(pos.X+dx-c.body.HalfWidth) + 1
		snapped := left + c.body.HalfWidth + edgeEpsilon
		if snapped <= pos.X && !c.blocked(vecmath.Vec(snapped, pos.Y)) {
			return snapped, true
		}
	}
	return pos.X, true
}

func (c *collider) moveAxisY(pos vecmath.Vector2, dy float64) (float64, bool) {
	if !c.blocked(vecmath.Vec(pos.X, pos.Y+dy)) {
		return pos.Y + dy, false
	}
	if dy > 0 {
		top := math.Floor(pos.Y + dy + c.body.Height)
		snapped := top - c.body.Height - edgeEpsilon
		if snapped >= pos.Y && !c.blocked(vecmath.Vec(pos.X, snapped)) {
			return snapped, true
		}
	} else {
		snapped := math.Floor(pos.Y+dy) + 1
		if snapped <= pos.Y && !c.blocked(vecmath.Vec(pos.X, snapped)) {
			return snapped, true
		}
	}
	return pos.Y, true
}

// cells возвращает диапазон клеток, которые пересекает тело.
func cells(pos vecmath.Vector2, body Body) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(pos.X - body.HalfWidth))
	x1 = int(math.Floor(pos.X + body.HalfWidth - edgeEpsilon))
	y0 = int(math.Floor(pos.Y))
	y1 = int(math.Floor(pos.Y + body.Height - edgeEpsilon))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

// inside - тело целиком на карте. Всё за картой считается твёрдым.
func inside(pos vecmath.Vector2, body Body, m *domain.Map) bool {
	x0, y0, x1, y1 := cells(pos, body)
	return m.InBounds(x0, y0) && m.InBounds(x1, y1)
}

func touchedTiles(pos vecmath.Vector2, body Body, m *domain.Map) (damage float64, outside bool) {
	x0, y0, x1, y1 := cells(pos, body)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			tt, ok := m.Tile(x, y)
			if !ok {
				outside = true
				continue
			}
			damage = math.Max(damage, tt.Damage)
		}
	}
	return
}
