package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// AgentConfig describes one automated player in an experiment
type AgentConfig struct {
	ID         int     `yaml:"id"`
	Strategy   string  `yaml:"strategy"`             // minimax, mcts or greedy
	MaxDepth   int     `yaml:"maxDepth,omitempty"`   // minimax
	Iterations int     `yaml:"iterations,omitempty"` // mcts
	Epsilon    float64 `yaml:"epsilon,omitempty"`    // greedy
	Evaluator  string  `yaml:"evaluator,omitempty"`  // name in game.Evaluators
	Seed       uint64  `yaml:"seed,omitempty"`       // 0 seeds from the clock
}

type GameRecord struct {
	ID          int
	Agent1      int    // AgentConfig.ID
	Agent2      int    // AgentConfig.ID
	Agent1Color string // color played by Agent1
	GameMetric
}

type MoveRecord struct {
	Game  int // GameRecord.ID
	Agent int // AgentConfig.ID of the mover
	MoveMetric
}

// moveRow is the Parquet layout of a MoveRecord
type moveRow struct {
	Game         int32  `parquet:"game"`
	Agent        int32  `parquet:"agent"`
	Step         int32  `parquet:"step"`
	Player       string `parquet:"player,dict"`
	Move         string `parquet:"move,dict"`
	Strategy     string `parquet:"strategy,dict"`
	DurationNs   int64  `parquet:"duration_ns"`
	Episodes     int32  `parquet:"episodes"`
	FullPlayouts int32  `parquet:"full_playouts"`
	Nodes        int32  `parquet:"nodes"`
	Leaves       int32  `parquet:"leaves"`
	Cutoffs      int32  `parquet:"cutoffs"`
	Policy       string `parquet:"policy,optional,zstd"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates outDir/name/<timestamp> to hold the experiment's files
func NewWriter(outDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "max_depth", "iterations", "epsilon", "evaluator", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.MaxDepth),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Epsilon, 'f', -1, 64),
			config.Evaluator,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "agent1", "agent2", "agent1_color", "starting_player", "winner",
		"black_discs", "white_discs", "total_moves", "passes", "start_time", "end_time", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Agent1Color,
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "agent", "step", "player", "move", "strategy", "duration",
		"episodes", "full_playouts", "nodes", "leaves", "cutoffs", "policy",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			record.Policy,
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteMoveRecordsParquet stores the move records as zstd compressed Parquet,
// writing to a temporary file first and renaming it into place.
func (w *Writer) WriteMoveRecordsParquet(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:         int32(record.Game),
			Agent:        int32(record.Agent),
			Step:         int32(record.Step),
			Player:       record.Player,
			Move:         record.Move,
			Strategy:     record.Strategy,
			DurationNs:   record.Duration.Nanoseconds(),
			Episodes:     int32(record.Episodes),
			FullPlayouts: int32(record.FullPlayouts),
			Nodes:        int32(record.Nodes),
			Leaves:       int32(record.Leaves),
			Cutoffs:      int32(record.Cutoffs),
			Policy:       record.Policy,
		})
	}

	outPath := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "othello_move_v1"),
	); err != nil {
		return fmt.Errorf("failed to write move records parquet: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("failed to rename move records parquet: %w", err)
	}
	return nil
}
