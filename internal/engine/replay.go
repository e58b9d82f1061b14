package engine

import (
	"errors"
	"fmt"
	"time"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/utils"

	"github.com/sirupsen/logrus"
)

var ErrReplayDiverged = errors.New("replay diverged")

// Recorder копит ввод каждого тика. Вместе с сидом этого хватает для повтора.
type Recorder struct {
	session domain.ReplaySession
}

func NewRecorder(cfg Config) *Recorder {
	return &Recorder{session: domain.ReplaySession{
		ID:        utils.GenerateID(),
		Seed:      cfg.Seed,
		Players:   cfg.Players,
		Level:     cfg.Level,
		Timestamp: time.Now().Unix(),
	}}
}

func (r *Recorder) Record(tick uint64, dt float64, input domain.InputSnapshot) {
	r.session.Frames = append(r.session.Frames, domain.ReplayFrame{
		Tick:  tick,
		Dt:    dt,
		Input: input.Clone(),
	})
}

func (r *Recorder) Len() int {
	return len(r.session.Frames)
}

// Finish закрывает запись итоговым хэшем мира.
func (r *Recorder) Finish(digest uint64) *domain.ReplaySession {
	r.session.Digest = digest
	s := r.session
	return &s
}

// Playback заново проигрывает запись и сверяет итоговый хэш.
// Сид, число игроков и карта берутся из записи, остальное из cfg.
func Playback(cfg Config, source sprites.Source, session *domain.ReplaySession) (*Game, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"replay":    session.ID,
	})

	cfg.Seed = session.Seed
	cfg.Players = session.Players
	if session.Level != "" {
		cfg.Level = session.Level
	}

	game, err := NewGame(cfg, cfg.Factory(), source)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", session.ID, err)
	}

	for _, frame := range session.Frames {
		if frame.Tick != game.Tick() {
			return game, fmt.Errorf("%w: frame for tick %d at tick %d", ErrReplayDiverged, frame.Tick, game.Tick())
		}
		game.Step(frame.Dt, frame.Input)
	}

	digest := game.Digest()
	if digest != session.Digest {
		log.WithFields(logrus.Fields{
			"expected": session.Digest,
			"actual":   digest,
		}).Error("Replay digest mismatch")
		return game, fmt.Errorf("%w: digest %x, recorded %x", ErrReplayDiverged, digest, session.Digest)
	}

	log.WithField("ticks", len(session.Frames)).Info("Replay verified")
	return game, nil
}
