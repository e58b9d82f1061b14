package animation

import (
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/logger"
)

// CharacterState - состояния анимации персонажа.
type CharacterState uint8

const (
	IdleLeft CharacterState = iota
	IdleRight
	IdleAnim1
	IdleAnim2
	RunningLeft
	RunningRight
	ShootingLeft
	ShootingRight
	ReversingLeftToRight
	ReversingRightToLeft
)

var characterStateNames = map[CharacterState]string{
	IdleLeft:             "IDLE_LEFT",
	IdleRight:            "IDLE_RIGHT",
	IdleAnim1:            "IDLE_ANIM_1",
	IdleAnim2:            "IDLE_ANIM_2",
	RunningLeft:          "RUNNING_LEFT",
	RunningRight:         "RUNNING_RIGHT",
	ShootingLeft:         "SHOOTING_LEFT",
	ShootingRight:        "SHOOTING_RIGHT",
	ReversingLeftToRight: "REVERSING_LEFT_TO_RIGHT",
	ReversingRightToLeft: "REVERSING_RIGHT_TO_LEFT",
}

func (s CharacterState) String() string {
	if name, ok := characterStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IdleRepeats - сколько раз проигрывается обычный idle перед "ёрзанием".
const IdleRepeats = 5

// Chooser - источник случайности политики. *rand.Rand его реализует,
// тесты подставляют фиксированный выбор.
type Chooser interface {
	Intn(n int) int
}

// CharacterSheetName - спрайт-лист персонажа.
const CharacterSheetName = "character.png"

// CharacterCell - размер ячейки листа персонажа в пикселях.
const CharacterCell = 64

// characterLayout: строка листа, число кадров и интервал для каждого состояния.
var characterLayout = map[CharacterState]struct {
	Row      int
	Frames   int
	Interval float64
}{
	IdleLeft:             {Row: 0, Frames: 4, Interval: 0.15},
	IdleRight:            {Row: 1, Frames: 4, Interval: 0.15},
	IdleAnim1:            {Row: 2, Frames: 8, Interval: 0.1},
	IdleAnim2:            {Row: 3, Frames: 8, Interval: 0.1},
	RunningLeft:          {Row: 4, Frames: 6, Interval: 0.08},
	RunningRight:         {Row: 5, Frames: 6, Interval: 0.08},
	ShootingLeft:         {Row: 6, Frames: 3, Interval: 0.07},
	ShootingRight:        {Row: 7, Frames: 3, Interval: 0.07},
	ReversingLeftToRight: {Row: 8, Frames: 3, Interval: 0.06},
	ReversingRightToLeft: {Row: 9, Frames: 3, Interval: 0.06},
}

// CharacterSequences нарезает лист персонажа на последовательности.
// Результат можно разделять между несколькими персонажами.
func CharacterSequences(sheet *sprites.Sheet) map[CharacterState]Sequence[sprites.Sprite] {
	sequences := make(map[CharacterState]Sequence[sprites.Sprite], len(characterLayout))
	for state, layout := range characterLayout {
		frames := make([]sprites.Sprite, layout.Frames)
		for i := range frames {
			frames[i] = sheet.Cell(i, layout.Row, CharacterCell, CharacterCell)
		}
		sequences[state] = NewFrameSequence(layout.Interval, frames...)
	}
	return sequences
}

// CharacterPolicy - автомат анимаций персонажа.
type CharacterPolicy struct {
	sequences map[CharacterState]Sequence[sprites.Sprite]
	rng       Chooser
}

func NewCharacterPolicy(sequences map[CharacterState]Sequence[sprites.Sprite], rng Chooser) *CharacterPolicy {
	return &CharacterPolicy{sequences: sequences, rng: rng}
}

// idle - несколько обычных idle, затем одна из двух "ёрзающих" анимаций.
func (p *CharacterPolicy) idle(right bool) []CharacterState {
	base := IdleLeft
	if right {
		base = IdleRight
	}
	fidget := IdleAnim1
	if p.rng.Intn(2) == 1 {
		fidget = IdleAnim2
	}

	states := make([]CharacterState, 0, IdleRepeats+1)
	for i := 0; i < IdleRepeats; i++ {
		states = append(states, base)
	}
	return append(states, fidget)
}

func (p *CharacterPolicy) InitialStates() []CharacterState {
	return p.idle(true)
}

func (p *CharacterPolicy) TransitionTo(current CharacterState, requested *CharacterState) []CharacterState {
	if requested != nil {
		next := *requested
		switch {
		// Смена направления бега - сначала разворот
		case current == RunningLeft && next == RunningRight:
			return []CharacterState{ReversingLeftToRight, RunningRight}
		case current == RunningRight && next == RunningLeft:
			return []CharacterState{ReversingRightToLeft, RunningLeft}
		case next == IdleLeft:
			return p.idle(false)
		case next == IdleRight:
			return p.idle(true)
		default:
			return []CharacterState{next}
		}
	}

	switch current {
	case IdleLeft, ShootingLeft:
		// После стрельбы - снова idle в ту же сторону
		return p.idle(false)
	case IdleRight, ShootingRight:
		return p.idle(true)
	case RunningLeft, RunningRight:
		// Бег просто зацикливается
		return []CharacterState{current}
	default:
		logger.For("animation").WithField("state", current).
			Debug("Reached end of animation and don't know what to do")
		return p.idle(true)
	}
}

func (p *CharacterPolicy) Sequence(state CharacterState) Sequence[sprites.Sprite] {
	seq, ok := p.sequences[state]
	if !ok {
		panic("animation: no sequence for character state " + state.String())
	}
	return seq
}

// NewCharacterAnimation - удобный конструктор анимации персонажа.
func NewCharacterAnimation(sequences map[CharacterState]Sequence[sprites.Sprite], rng Chooser) *Animation[CharacterState, sprites.Sprite] {
	return New[CharacterState, sprites.Sprite](NewCharacterPolicy(sequences, rng))
}
