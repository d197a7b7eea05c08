package meta

import (
	"errors"
	"fmt"
	"os"
	"othello/experiments/metrics"
	"othello/game"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

var strategies = []string{"minimax", "mcts", "greedy"}

// Config is the experiment description read from YAML
type Config struct {
	Name     string                `yaml:"name"`
	OutDir   string                `yaml:"outDir"`
	NumGames int                   `yaml:"numGames"`
	MaxTurns int                   `yaml:"maxTurns"`
	Debug    bool                  `yaml:"debug"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][]int               `yaml:"matchUps"` // pairs of agent IDs
}

// Default pits a minimax agent against an MCTS agent
func Default() *Config {
	c := &Config{
		Agents: []metrics.AgentConfig{
			{ID: 1, Strategy: "minimax"},
			{ID: 2, Strategy: "mcts"},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads a YAML config. Fields left out take the package defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(c.Agents) == 0 {
		c.Agents = Default().Agents
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.OutDir == "" {
		c.OutDir = OUT_DIR
	}
	if c.NumGames == 0 {
		c.NumGames = NUM_GAMES
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = MAX_TURNS
	}
	for i := range c.Agents {
		a := &c.Agents[i]
		switch a.Strategy {
		case "minimax":
			if a.MaxDepth == 0 {
				a.MaxDepth = MAX_DEPTH
			}
		case "mcts":
			if a.Iterations == 0 {
				a.Iterations = ITERATIONS
			}
		}
		if a.Evaluator == "" && a.Strategy != "mcts" {
			a.Evaluator = EVALUATOR
		}
	}
	if len(c.MatchUps) == 0 { // Round robin
		for i := 0; i < len(c.Agents); i++ {
			for j := i + 1; j < len(c.Agents); j++ {
				c.MatchUps = append(c.MatchUps, []int{c.Agents[i].ID, c.Agents[j].ID})
			}
		}
	}
}

// Validate reports the first problem found in the config
func (c *Config) Validate() error {
	if c.NumGames < 1 {
		return fmt.Errorf("%w: numGames %d must be at least 1", ErrInvalidConfig, c.NumGames)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: maxTurns %d must be at least 1", ErrInvalidConfig, c.MaxTurns)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true

		if !slices.Contains(strategies, a.Strategy) {
			return fmt.Errorf("%w: agent %d has unknown strategy %q", ErrInvalidConfig, a.ID, a.Strategy)
		}
		if a.Strategy == "minimax" && a.MaxDepth < 2 {
			return fmt.Errorf("%w: agent %d max depth %d is below 2", ErrInvalidConfig, a.ID, a.MaxDepth)
		}
		if a.Iterations < 0 {
			return fmt.Errorf("%w: agent %d iterations %d is negative", ErrInvalidConfig, a.ID, a.Iterations)
		}
		if a.Epsilon < 0 || a.Epsilon > 1 {
			return fmt.Errorf("%w: agent %d epsilon %v is outside [0, 1]", ErrInvalidConfig, a.ID, a.Epsilon)
		}
		if _, ok := game.Evaluators[a.Evaluator]; a.Evaluator != "" && !ok {
			return fmt.Errorf("%w: agent %d has unknown evaluator %q", ErrInvalidConfig, a.ID, a.Evaluator)
		}
	}

	for _, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("%w: match up %v must name two agents", ErrInvalidConfig, m)
		}
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("%w: match up %v names unknown agent %d", ErrInvalidConfig, m, id)
			}
		}
	}
	return nil
}

// Agent returns the agent config with the given id
func (c *Config) Agent(id int) (metrics.AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return metrics.AgentConfig{}, false
}

// Pairs resolves the match ups into agent configs. The config must be valid.
func (c *Config) Pairs() [][2]metrics.AgentConfig {
	pairs := make([][2]metrics.AgentConfig, 0, len(c.MatchUps))
	for _, m := range c.MatchUps {
		a1, _ := c.Agent(m[0])
		a2, _ := c.Agent(m[1])
		pairs = append(pairs, [2]metrics.AgentConfig{a1, a2})
	}
	return pairs
}
