package actions

import (
	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/engine/handlers"
	"fluffy-fiesta/pkg/api"
)

// HandleInput заменяет состояние контроллера слота.
func HandleInput(ctx handlers.Context, p api.InputPayload) (handlers.Result, error) {
	in := domain.PlayerInput{
		Left:  p.Left,
		Right: p.Right,
		Up:    p.Up,
		Down:  p.Down,
		Fire:  p.Fire,
		AxisX: p.AxisX,
		AxisY: p.AxisY,
	}
	if err := ctx.Input.SetInput(p.Slot, in); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.EmptyResult(), nil
}

func HandleAutopilot(ctx handlers.Context, p api.AutopilotPayload) (handlers.Result, error) {
	if err := ctx.Input.SetAutopilot(p.Slot, p.Enabled); err != nil {
		return handlers.EmptyResult(), err
	}
	if p.Enabled {
		return handlers.Result{Msg: "autopilot on"}, nil
	}
	return handlers.Result{Msg: "autopilot off"}, nil
}

func HandlePing(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "PONG"}, nil
}
