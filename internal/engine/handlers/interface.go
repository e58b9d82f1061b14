package handlers

import (
	"encoding/json"

	"fluffy-fiesta/internal/domain"
)

// InputSink принимает ввод игроков. InputManager движка реализует этот интерфейс.
type InputSink interface {
	SetInput(slot int, in domain.PlayerInput) error
	SetAutopilot(slot int, enabled bool) error
}

// Context передает хендлеру то, что команда может менять.
type Context struct {
	Input     InputSink
	SessionID string
}

// Result - ответ хендлера. Пустой Msg - отвечать клиенту не нужно.
type Result struct {
	Msg string
}

// HandlerFunc - контракт для любой команды (INPUT, AUTOPILOT, PING).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
