package domain

// ReplayFrame - ввод одного тика.
type ReplayFrame struct {
	Tick  uint64        `json:"tick"`
	Dt    float64       `json:"dt"`
	Input InputSnapshot `json:"input"`
}

// ReplaySession - полная запись партии: зерно, число игроков и ввод.
// Мир детерминирован, поэтому этого достаточно для повтора.
type ReplaySession struct {
	ID        string        `json:"id"`
	Seed      int64         `json:"seed"` // Зерно генерации мира и рандома
	Players   int           `json:"players"`
	Level     string        `json:"level"`
	Timestamp int64         `json:"timestamp"`
	Frames    []ReplayFrame `json:"frames"`
	// Digest - хэш итогового состояния для проверки воспроизведения.
	Digest uint64 `json:"digest"`
}
