package main

import (
	"flag"

	"fluffy-fiesta/internal/engine"
	"fluffy-fiesta/pkg/utils"
)

type options struct {
	configPath string
	replayPath string
	seed       int64
	players    int
	ticks      uint64
	levelName  string
	record     bool
	autopilot  bool
	headless   bool
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("fiesta", flag.ExitOnError)
	fs.StringVar(&o.configPath, "config", "", "Path to YAML config")
	fs.StringVar(&o.replayPath, "replay", "", "Path to .ffrp replay file to verify")
	fs.Int64Var(&o.seed, "seed", 0, "Master seed (0 for random)")
	fs.IntVar(&o.players, "players", 0, "Number of player slots")
	fs.Uint64Var(&o.ticks, "ticks", 0, "Stop after N ticks (0 = run forever)")
	fs.StringVar(&o.levelName, "level", "", "Level: example or generated")
	fs.BoolVar(&o.record, "record", false, "Record the session to replay_dir")
	fs.BoolVar(&o.autopilot, "autopilot", false, "Let bots play every slot")
	fs.BoolVar(&o.headless, "headless", false, "No HTTP server, ticks run back to back (needs -ticks)")
	return fs
}

// apply переносит в cfg только явно заданные флаги.
func (o *options) apply(fs *flag.FlagSet, cfg *engine.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			// -seed 0 перекрывает зерно из файла случайным
			cfg.Seed = o.seed
			if cfg.Seed == 0 {
				cfg.Seed = utils.RandomSeed()
			}
		case "players":
			cfg.Players = o.players
		case "ticks":
			cfg.MaxTicks = o.ticks
		case "level":
			cfg.Level = o.levelName
		case "record":
			cfg.Record = o.record
		case "autopilot":
			cfg.Autopilot = o.autopilot
		}
	})
}
