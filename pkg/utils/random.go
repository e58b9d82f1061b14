package utils

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// GenerateID создает уникальный ID для сессий и записей
func GenerateID() string {
	return uuid.NewString()
}

// StringToSeed превращает строку (например, имя карты) в зерно генератора
func StringToSeed(s string) int64 {
	return int64(xxhash.Sum64String(s) >> 1)
}

// DeriveSeed выводит независимое зерно для подсистемы из общего.
// Одинаковые (seed, stream) всегда дают одинаковый результат.
func DeriveSeed(seed int64, stream string) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(stream)
	return int64(d.Sum64() >> 1)
}

// RandomSeed - зерно от текущего времени, когда пользователь не задал своё
func RandomSeed() int64 {
	return time.Now().UnixNano()
}
