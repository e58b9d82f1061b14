package animation

// Sequence - упорядоченный список кадров фиксированной длины, проигрываемый
// с постоянным интервалом.
type Sequence[F any] interface {
	Interval() float64
	Duration() float64
	// Frame возвращает кадр для времени t от начала последовательности.
	// false - t вышло за пределы последовательности.
	Frame(t float64) (F, bool)
}

// FrameSequence - последовательность из готового списка кадров.
type FrameSequence[F any] struct {
	Frames []F
	Step   float64
}

// NewFrameSequence создаёт последовательность с интервалом step между кадрами.
func NewFrameSequence[F any](step float64, frames ...F) *FrameSequence[F] {
	return &FrameSequence[F]{Frames: frames, Step: step}
}

func (s *FrameSequence[F]) Interval() float64 {
	return s.Step
}

// Duration = число кадров * интервал.
func (s *FrameSequence[F]) Duration() float64 {
	return float64(len(s.Frames)) * s.Step
}

func (s *FrameSequence[F]) Frame(t float64) (F, bool) {
	var zero F
	if t < 0 || t >= s.Duration() {
		return zero, false
	}
	// t/Step может округлиться до len(Frames) при t чуть меньше Duration
	idx := min(int(t/s.Step), len(s.Frames)-1)
	return s.Frames[idx], true
}
