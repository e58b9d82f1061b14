package domain

import "strings"

// EntityKind - вид сущности, определяет реализацию EntityLogic.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindCharacter
	KindProjectile
	KindSpawnPoint
	KindDummy
)

// Идентификаторы видов в определениях карты
const (
	TypeIDCharacter  = "f.character"
	TypeIDProjectile = "f.projectile"
	TypeIDSpawn      = "f.spawn"
	TypeIDDummy      = "f.dummy"
)

var kindToString = map[EntityKind]string{
	KindCharacter:  "character",
	KindProjectile: "projectile",
	KindSpawnPoint: "spawn",
	KindDummy:      "dummy",
}

var typeIDToKind = map[string]EntityKind{
	TypeIDCharacter:  KindCharacter,
	TypeIDProjectile: KindProjectile,
	TypeIDSpawn:      KindSpawnPoint,
	TypeIDDummy:      KindDummy,
}

// String возвращает строковое представление (для логов и дебага)
func (k EntityKind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseEntityKind конвертирует type id определения ("f.spawn") в вид.
func ParseEntityKind(typeID string) EntityKind {
	if val, ok := typeIDToKind[strings.ToLower(typeID)]; ok {
		return val
	}
	return KindUnknown
}
