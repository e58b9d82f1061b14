// Package animation проигрывает последовательности кадров по конечному
// автомату состояний, который задаёт политика конкретного вида сущности.
package animation

import (
	"fmt"

	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Policy - часть логики сущности, описывающая автомат переходов.
//
// Политика может быть недетерминированной (например, случайный выбор
// idle-анимации), поэтому одинаковые входы могут давать разные списки.
// Возвращаемый список состояний никогда не должен быть пустым.
type Policy[S comparable, F any] interface {
	// InitialStates - состояния, с которых начинается проигрывание.
	InitialStates() []S

	// TransitionTo - как перейти из current в requested.
	// requested == nil означает "список закончился, реши сам, что дальше".
	TransitionTo(current S, requested *S) []S

	// Sequence возвращает последовательность кадров для состояния.
	Sequence(state S) Sequence[F]
}

// Animation проигрывает последовательности по автомату политики.
type Animation[S comparable, F any] struct {
	policy       Policy[S, F]
	states       []S
	stateIdx     int
	sequenceTime float64
}

// New создаёт анимацию в начальных состояниях политики.
func New[S comparable, F any](policy Policy[S, F]) *Animation[S, F] {
	states := policy.InitialStates()
	mustHaveStates(states, "InitialStates")
	return &Animation[S, F]{
		policy: policy,
		states: states,
	}
}

// GotoState прерывает текущую последовательность и начинает список,
// который политика строит для перехода в state.
func (a *Animation[S, F]) GotoState(state S) {
	current := a.states[0]
	a.states = a.policy.TransitionTo(current, &state)
	mustHaveStates(a.states, "TransitionTo")
	a.stateIdx = 0
	a.sequenceTime = 0

	if logger.DebugEnabled() {
		logger.For("animation").WithFields(logrus.Fields{
			"from":   current,
			"to":     state,
			"states": a.states,
		}).Debug("goto_state")
	}
}

// Update продвигает время на dt. За один вызов может пройти несколько
// последовательностей и даже несколько списков состояний.
func (a *Animation[S, F]) Update(dt float64) {
	current := a.states[a.stateIdx]
	sequence := a.policy.Sequence(current)
	a.sequenceTime += dt

	for a.sequenceTime >= sequence.Duration() {
		duration := sequence.Duration()
		if duration <= 0 {
			panic(fmt.Sprintf("animation: sequence for state %v has non-positive duration %v", current, duration))
		}
		a.sequenceTime -= duration
		last := current
		a.stateIdx++
		if a.stateIdx >= len(a.states) {
			a.states = a.policy.TransitionTo(last, nil)
			mustHaveStates(a.states, "TransitionTo")
			a.stateIdx = 0
		}
		current = a.states[a.stateIdx]
		sequence = a.policy.Sequence(current)
	}
}

// Frame возвращает текущий кадр.
func (a *Animation[S, F]) Frame() F {
	state := a.states[a.stateIdx]
	frame, ok := a.policy.Sequence(state).Frame(a.sequenceTime)
	if !ok {
		// Update гарантирует sequenceTime < Duration, значит это ошибка в Update
		logger.For("animation").WithFields(logrus.Fields{
			"state": state,
			"time":  a.sequenceTime,
		}).Error("Animation exceeded sequence length")
		panic(fmt.Sprintf("animation: time %v exceeded sequence of state %v", a.sequenceTime, state))
	}
	return frame
}

// State - состояние, которое проигрывается сейчас.
func (a *Animation[S, F]) State() S {
	return a.states[a.stateIdx]
}

// SequenceTime - время от начала текущей последовательности.
func (a *Animation[S, F]) SequenceTime() float64 {
	return a.sequenceTime
}

// States возвращает копию текущего списка состояний.
func (a *Animation[S, F]) States() []S {
	return append([]S(nil), a.states...)
}

func mustHaveStates[S any](states []S, source string) {
	if len(states) == 0 {
		logger.For("animation").WithField("source", source).Error("Animation policy returned empty states")
		panic("animation: policy " + source + " returned an empty state list")
	}
}
