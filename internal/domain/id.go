package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор сущности в арене мира.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Generation (24) | Index (32) ]
//
// Index - номер слота в арене, Generation - версия слота. После удаления
// сущности поколение слота растёт, и старые ID перестают находить что-либо.
type EntityID uint64

// NilEntityID - отсутствие сущности.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 24
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает ID из частей. Значения обрезаются по маскам.
func PackEntityID(kind EntityKind, gen uint32, index uint32) EntityID {
	id := uint64(index) & maskIndex
	id |= (uint64(gen) & maskGen) << shiftGen
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

func (id EntityID) Kind() EntityKind {
	return EntityKind((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [kind:gen:idx]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s:%d:%d]", id.Kind(), id.Generation(), id.Index())
}

// MarshalJSON сериализует ID строкой, JS теряет точность на больших uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает и строку, и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if len(data) == 0 {
		*id = NilEntityID
		return nil
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}
