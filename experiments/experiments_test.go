package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	greedy := metrics.AgentConfig{ID: 1, Strategy: "greedy", Evaluator: "discs"}
	mcts := metrics.AgentConfig{ID: 2, Strategy: "mcts", Iterations: 10, Seed: 3}
	configs := []metrics.AgentConfig{greedy, mcts}

	t.Run("writes every record file", func(t *testing.T) {
		out := t.TempDir()

		dir, err := RunExperiment("smoke", out, configs, [][2]metrics.AgentConfig{{greedy, mcts}}, 2, Options{})

		require.NoError(t, err)
		require.Equal(t, filepath.Join(out, "smoke"), filepath.Dir(dir))

		agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, agents, 3)

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 3, "Header plus two games")
		require.Equal(t, "black", games[1][3], "Agent1 should start as black")
		require.Equal(t, "white", games[2][3], "Agent1 should switch to white")

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 1)
		require.Equal(t, "1", moves[1][1], "Black's first mover in game 1 is agent 1")

		f, err := os.Open(filepath.Join(dir, "move_records.parquet"))
		require.NoError(t, err)
		defer f.Close()
		stat, err := f.Stat()
		require.NoError(t, err)
		pf, err := parquet.OpenFile(f, stat.Size())
		require.NoError(t, err)
		require.Equal(t, int64(len(moves)-1), pf.NumRows(), "Parquet and CSV should hold the same moves")
	})

	t.Run("turn cap is applied", func(t *testing.T) {
		out := t.TempDir()

		dir, err := RunExperiment("capped", out, configs, [][2]metrics.AgentConfig{{greedy, greedy}}, 1, Options{MaxTurns: 2})

		require.NoError(t, err)
		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Len(t, moves, 3, "Header plus two turns")
	})

	t.Run("bad agent config fails before writing", func(t *testing.T) {
		out := t.TempDir()
		bad := metrics.AgentConfig{ID: 9, Strategy: "minimax", MaxDepth: 1}

		_, err := RunExperiment("bad", out, configs, [][2]metrics.AgentConfig{{greedy, bad}}, 1, Options{})

		require.ErrorIs(t, err, searcher.ErrInvalidConfiguration)
		_, statErr := os.Stat(filepath.Join(out, "bad"))
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 9, Strategy: "greedy", Evaluator: "neural"}

		_, err := RunExperiment("bad", t.TempDir(), configs, [][2]metrics.AgentConfig{{bad, greedy}}, 1, Options{})

		require.Error(t, err)
	})
}
