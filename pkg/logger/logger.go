package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем info, чтобы тесты и библиотечный
// код могли логировать без отдельной инициализации.
var Log = logrus.New()

// Init настраивает глобальный логгер.
// Пустые level/format берутся из переменных окружения LOG_LEVEL и LOG_FORMAT.
func Init(level, format string) {
	// 1. Уровень логирования. По умолчанию - "info".
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// 2. Форматтер: "json" - для сбора логов, "text" - для разработки.
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// For возвращает логгер компонента с полем "component".
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// DebugEnabled позволяет не собирать поля для покадровых сообщений.
func DebugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
