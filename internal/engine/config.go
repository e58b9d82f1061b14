package engine

import (
	"errors"
	"fmt"
	"os"

	"fluffy-fiesta/internal/systems"
	"fluffy-fiesta/pkg/api"
	"fluffy-fiesta/pkg/level"
	"fluffy-fiesta/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Карты, которые умеет собирать хост
const (
	LevelExample   = "example"
	LevelGenerated = "generated"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят карта и случайность сущностей.
	Seed    int64  `yaml:"seed"`
	Players int    `yaml:"players"`
	Level   string `yaml:"level"`

	// TickRate - тиков симуляции в секунду.
	TickRate int `yaml:"tick_rate"`
	// MaxTicks - остановиться после стольких тиков, 0 - без ограничения.
	MaxTicks uint64 `yaml:"max_ticks"`

	AspectRatio float64 `yaml:"aspect_ratio"`
	CameraRate  float64 `yaml:"camera_rate"`

	// PublishEvery - рассылать снимок раз в столько тиков.
	PublishEvery int    `yaml:"publish_every"`
	ReplayDir    string `yaml:"replay_dir"`
	Record       bool   `yaml:"record"`
	Port         string `yaml:"port"`
	Autopilot    bool   `yaml:"autopilot"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Sheets - размеры листов спрайтов (имя -> [ширина, высота]).
	Sheets map[string][2]int `yaml:"sheets"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         utils.RandomSeed(),
		Players:      4,
		Level:        LevelExample,
		TickRate:     60,
		AspectRatio:  systems.DefaultAspectRatio,
		CameraRate:   systems.DefaultCameraRate,
		PublishEvery: 2,
		ReplayDir:    "replays",
		Port:         "8080",
		LogLevel:     "info",
		LogFormat:    "text",
		Sheets:       level.DefaultSheets(),
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// Пустой путь - просто значения по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет то, что не проверят конструкторы мира и камеры.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.PublishEvery <= 0:
		return fmt.Errorf("%w: publish_every must be positive, got %d", ErrInvalidConfig, c.PublishEvery)
	case c.Players > api.MaxPlayers:
		return fmt.Errorf("%w: at most %d players, got %d", ErrInvalidConfig, api.MaxPlayers, c.Players)
	case c.Level != LevelExample && c.Level != LevelGenerated:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidConfig, c.Level)
	}
	return nil
}

// Dt - шаг симуляции в секундах.
func (c Config) Dt() float64 {
	return 1 / float64(c.TickRate)
}

// Factory - определение карты по конфигу.
func (c Config) Factory() *level.MapFactory {
	var f *level.MapFactory
	if c.Level == LevelGenerated {
		f = level.Generate(utils.DeriveSeed(c.Seed, "level"), c.Players)
	} else {
		f = level.Example()
	}
	f.NbPlayers = c.Players
	return f
}
