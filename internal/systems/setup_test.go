package systems

import (
	"os"
	"testing"

	"fluffy-fiesta/pkg/logger"
)

func TestMain(m *testing.M) {
	// Логгер нужен до запуска тестов, системы пишут debug-диагностику
	logger.Init("debug", "text")

	os.Exit(m.Run())
}
