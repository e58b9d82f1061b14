package engine

import (
	"errors"
	"sync"

	"fluffy-fiesta/internal/domain"
)

var ErrNoSuchSlot = errors.New("no such player slot")

// InputSource - внешний источник ввода для слотов без живого игрока.
type InputSource interface {
	Input(slot int, tick uint64) domain.PlayerInput
}

// WorldObserver - источник ввода, которому перед тиком показывают мир.
type WorldObserver interface {
	Observe(w *domain.World)
}

// InputManager хранит последний ввод каждого игрока.
// Пишут его websocket-клиенты, читает цикл симуляции.
type InputManager struct {
	mu        sync.RWMutex
	players   []domain.PlayerInput
	autopilot []bool
}

func NewInputManager(players int) *InputManager {
	return &InputManager{
		players:   make([]domain.PlayerInput, players),
		autopilot: make([]bool, players),
	}
}

// SetInput заменяет ввод слота. Оси ограничиваются отрезком [-1, 1].
func (m *InputManager) SetInput(slot int, in domain.PlayerInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slot < 0 || slot >= len(m.players) {
		return ErrNoSuchSlot
	}
	m.players[slot] = in.Clamped()
	return nil
}

// SetAutopilot передаёт слот боту или забирает обратно.
func (m *InputManager) SetAutopilot(slot int, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slot < 0 || slot >= len(m.autopilot) {
		return ErrNoSuchSlot
	}
	m.autopilot[slot] = enabled
	if enabled {
		m.players[slot] = domain.PlayerInput{}
	}
	return nil
}

// SetAllAutopilot включает бота для всех слотов.
func (m *InputManager) SetAllAutopilot(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.autopilot {
		m.autopilot[i] = enabled
	}
}

// Snapshot собирает ввод тика. Слоты на автопилоте берут ввод из bots.
func (m *InputManager) Snapshot(tick uint64, bots InputSource) domain.InputSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := domain.InputSnapshot{Players: make([]domain.PlayerInput, len(m.players))}
	copy(snap.Players, m.players)
	if bots != nil {
		for slot, on := range m.autopilot {
			if on {
				snap.Players[slot] = bots.Input(slot, tick).Clamped()
			}
		}
	}
	return snap
}

// Players - число слотов.
func (m *InputManager) Players() int {
	return len(m.players)
}
