package main

import (
	"flag"
	"os"
	"othello/experiments"
	"othello/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type overrides struct {
	name     string
	outDir   string
	numGames int
	maxTurns int
	debug    bool
}

func main() {
	configPath := flag.String("config", "", "YAML experiment config, built-in defaults when empty")
	var o overrides
	flag.StringVar(&o.name, "name", "", "Experiment name")
	flag.StringVar(&o.outDir, "out", "", "Directory for experiment results")
	flag.IntVar(&o.numGames, "games", 0, "Number of games per match up")
	flag.IntVar(&o.maxTurns, "max-turns", 0, "Turn cap per game")
	flag.BoolVar(&o.debug, "debug", false, "Log every search decision")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := loadConfig(*configPath, o)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dir, err := experiments.RunExperiment(
		config.Name,
		config.OutDir,
		config.Agents,
		config.Pairs(),
		config.NumGames,
		experiments.Options{MaxTurns: config.MaxTurns},
	)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", config.Name)
	}
	log.Info().Msgf("results written to %s", dir)
}

// loadConfig reads the config file, or the defaults without one, and applies
// the flags that were set on top
func loadConfig(path string, o overrides) (*meta.Config, error) {
	config := meta.Default()
	if path != "" {
		loaded, err := meta.Load(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if o.name != "" {
		config.Name = o.name
	}
	if o.outDir != "" {
		config.OutDir = o.outDir
	}
	if o.numGames != 0 {
		config.NumGames = o.numGames
	}
	if o.maxTurns != 0 {
		config.MaxTurns = o.maxTurns
	}
	if o.debug {
		config.Debug = true
	}
	return config, config.Validate()
}
