package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var (
	ErrBadSlot = errors.New("player slot out of range")
	ErrBadAxis = errors.New("axis value must be finite")
)

func validSlot(slot int) bool {
	return slot >= 0 && slot < MaxPlayers
}

func (p InputPayload) Validate() error {
	if !validSlot(p.Slot) {
		return ErrBadSlot
	}
	for _, v := range []float64{p.AxisX, p.AxisY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadAxis
		}
	}
	return nil
}

func (p AutopilotPayload) Validate() error {
	if !validSlot(p.Slot) {
		return ErrBadSlot
	}
	return nil
}
