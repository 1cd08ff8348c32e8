package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory results are written into.
func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.MaxDepth),
		})
	}
	return w.writeFile("agent_configs.csv", []string{"id", "kind", "max_depth"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Game,
			r.Initial,
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			strconv.Itoa(int(r.StartingPlayer)),
			strconv.Itoa(int(r.Winner)),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
		})
	}
	header := []string{"id", "game", "initial", "agent1", "agent2", "starting_player", "winner", "duration", "total_moves"}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(int(r.Player)),
			r.Move,
			r.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "move", "duration"}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
