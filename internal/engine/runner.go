package engine

import (
	"context"
	"sync/atomic"
	"time"

	"fluffy-fiesta/internal/network"
	"fluffy-fiesta/pkg/api"
	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Runner крутит симуляцию в реальном времени и рассылает снимки.
type Runner struct {
	Game     *Game
	Input    *InputManager
	Hub      *network.Broadcaster
	Bots     InputSource
	Recorder *Recorder

	TickRate     int
	PublishEvery int
	// MaxTicks - остановиться после стольких тиков, 0 - без ограничения.
	MaxTicks uint64
	// Unthrottled - не ждать таймер, тики идут подряд (headless прогоны).
	Unthrottled bool

	latest  atomic.Pointer[api.WorldSnapshot]
	mapView *api.MapView
}

func NewRunner(cfg Config, game *Game, input *InputManager, hub *network.Broadcaster, bots InputSource) *Runner {
	r := &Runner{
		Game:         game,
		Input:        input,
		Hub:          hub,
		Bots:         bots,
		TickRate:     cfg.TickRate,
		PublishEvery: cfg.PublishEvery,
		MaxTicks:     cfg.MaxTicks,
		mapView:      game.MapView(),
	}
	snap := game.Snapshot()
	r.latest.Store(&snap)
	return r
}

// Run блокируется до отмены ctx или до MaxTicks.
func (r *Runner) Run(ctx context.Context) error {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "runner",
		"tick_rate": r.TickRate,
	})
	log.Info("Simulation started")

	dt := 1 / float64(r.TickRate)
	publishEvery := uint64(max(r.PublishEvery, 1))

	var tickC <-chan time.Time
	if !r.Unthrottled {
		ticker := time.NewTicker(time.Second / time.Duration(r.TickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		if r.MaxTicks > 0 && r.Game.Tick() >= r.MaxTicks {
			log.WithField("ticks", r.Game.Tick()).Info("Tick limit reached")
			r.publish()
			return nil
		}

		if tickC != nil {
			select {
			case <-ctx.Done():
				log.Info("Simulation stopped")
				return nil
			case <-tickC:
			}
		} else if ctx.Err() != nil {
			log.Info("Simulation stopped")
			return nil
		}

		r.step(dt)
		if r.Game.Tick()%publishEvery == 0 {
			r.publish()
		}
	}
}

func (r *Runner) step(dt float64) {
	tick := r.Game.Tick()
	if obs, ok := r.Bots.(WorldObserver); ok {
		obs.Observe(r.Game.World())
	}
	input := r.Input.Snapshot(tick, r.Bots)
	if r.Recorder != nil {
		r.Recorder.Record(tick, dt, input)
	}
	r.Game.Step(dt, input)
}

func (r *Runner) publish() {
	snap := r.Game.Snapshot()
	r.latest.Store(&snap)
	if r.Hub != nil {
		r.Hub.Broadcast(api.ServerResponse{Type: api.MsgSnapshot, Snapshot: &snap})
	}
}

// Latest - последний опубликованный снимок. Безопасно звать из любой горутины.
func (r *Runner) Latest() api.WorldSnapshot {
	return *r.latest.Load()
}

// MapView - карта для приветствия новых клиентов. Карта не меняется.
func (r *Runner) MapView() *api.MapView {
	return r.mapView
}
