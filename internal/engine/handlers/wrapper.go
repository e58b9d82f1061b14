package handlers

import (
	"encoding/json"
	"fmt"

	"fluffy-fiesta/pkg/api"
)

// TypedHandlerFunc работает с уже распакованной структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер без данных (PING)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload превращает типизированный хендлер в HandlerFunc:
// распаковка JSON и валидация делаются здесь.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		// 1. Распаковка
		if len(raw) == 0 {
			return Result{}, fmt.Errorf("invalid payload format: empty payload")
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Валидация, если T её умеет
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Логика
		return handler(ctx, payload)
	}
}

// WithEmptyPayload игнорирует входящий JSON.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
