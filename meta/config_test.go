package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("fills in defaults", func(t *testing.T) {
		path := writeConfig(t, `
name: depth
agents:
  - id: 1
    strategy: minimax
  - id: 2
    strategy: mcts
    seed: 7
`)

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "depth", c.Name)
		require.Equal(t, OUT_DIR, c.OutDir)
		require.Equal(t, NUM_GAMES, c.NumGames)
		require.Equal(t, MAX_TURNS, c.MaxTurns)
		require.Equal(t, MAX_DEPTH, c.Agents[0].MaxDepth)
		require.Equal(t, EVALUATOR, c.Agents[0].Evaluator)
		require.Equal(t, ITERATIONS, c.Agents[1].Iterations)
		require.Equal(t, uint64(7), c.Agents[1].Seed)
		require.Equal(t, [][]int{{1, 2}}, c.MatchUps, "Missing match ups should pair every agent")
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		path := writeConfig(t, `
numGames: 4
maxTurns: 90
debug: true
agents:
  - {id: 3, strategy: greedy, epsilon: 0.5, evaluator: mobility}
  - {id: 5, strategy: minimax, maxDepth: 3}
matchUps:
  - [5, 3]
`)

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 4, c.NumGames)
		require.Equal(t, 90, c.MaxTurns)
		require.True(t, c.Debug)
		require.Equal(t, 0.5, c.Agents[0].Epsilon)
		require.Equal(t, "mobility", c.Agents[0].Evaluator)
		require.Equal(t, 3, c.Agents[1].MaxDepth)

		pairs := c.Pairs()
		require.Len(t, pairs, 1)
		require.Equal(t, 5, pairs[0][0].ID)
		require.Equal(t, 3, pairs[0][1].ID)
	})

	t.Run("no agents falls back to the default pair", func(t *testing.T) {
		c, err := Load(writeConfig(t, "numGames: 2\n"))

		require.NoError(t, err)
		require.Len(t, c.Agents, 2)
		require.Equal(t, 2, c.NumGames)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "agents: [\n"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown strategy", func(c *Config) { c.Agents[0].Strategy = "expectimax" }},
		{"shallow minimax", func(c *Config) { c.Agents[0].MaxDepth = 1 }},
		{"negative iterations", func(c *Config) { c.Agents[1].Iterations = -1 }},
		{"epsilon above one", func(c *Config) { c.Agents[0].Epsilon = 1.5 }},
		{"unknown evaluator", func(c *Config) { c.Agents[0].Evaluator = "neural" }},
		{"duplicate ids", func(c *Config) { c.Agents[1].ID = c.Agents[0].ID }},
		{"no games", func(c *Config) { c.NumGames = 0 }},
		{"match up with one agent", func(c *Config) { c.MatchUps = [][]int{{1}} }},
		{"match up with unknown agent", func(c *Config) { c.MatchUps = [][]int{{1, 9}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)

			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, Default().Validate())
	})
}
