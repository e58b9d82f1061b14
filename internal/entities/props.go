package entities

import "fluffy-fiesta/internal/domain"

// SpawnPoint каждый тик предлагает свою позицию системе порождения.
type SpawnPoint struct{}

func (SpawnPoint) Kind() domain.EntityKind {
	return domain.KindSpawnPoint
}

func (SpawnPoint) Update(self *domain.Entity, _ float64, view *domain.WorldView) bool {
	view.OfferSpawnPoint(self.Physics.Pos)
	return true
}

// Dummy - неподвижная мишень. Считает обновления и полученный урон.
type Dummy struct {
	Updates int
	Hits    int
	Damage  float64
}

func (d *Dummy) Kind() domain.EntityKind {
	return domain.KindDummy
}

func (d *Dummy) Update(*domain.Entity, float64, *domain.WorldView) bool {
	d.Updates++
	return true
}

func (d *Dummy) Hit(amount float64) {
	d.Hits++
	d.Damage += amount
}
