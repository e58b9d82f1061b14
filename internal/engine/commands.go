package engine

import (
	"errors"
	"fmt"

	"fluffy-fiesta/internal/engine/handlers"
	"fluffy-fiesta/internal/engine/handlers/actions"
	"fluffy-fiesta/pkg/api"
)

// ActionPing - проверка связи, ответ PONG.
const ActionPing = "PING"

var ErrUnknownAction = errors.New("unknown action")

// Dispatcher направляет команды клиентов в хендлеры.
type Dispatcher struct {
	handlers map[string]handlers.HandlerFunc
	input    handlers.InputSink
}

func NewDispatcher(input handlers.InputSink) *Dispatcher {
	return &Dispatcher{
		input: input,
		handlers: map[string]handlers.HandlerFunc{
			api.ActionInput:     handlers.WithPayload(actions.HandleInput),
			api.ActionAutopilot: handlers.WithPayload(actions.HandleAutopilot),
			ActionPing:          handlers.WithEmptyPayload(actions.HandlePing),
		},
	}
}

// Dispatch выполняет команду от имени сессии.
func (d *Dispatcher) Dispatch(sessionID string, cmd api.ClientCommand) (handlers.Result, error) {
	h, ok := d.handlers[cmd.Action]
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return h(handlers.Context{Input: d.input, SessionID: sessionID}, cmd.Payload)
}
