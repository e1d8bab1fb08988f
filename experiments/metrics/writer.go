package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord is one game row in an experiment dump.
type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

// MoveRecord is one move row in an experiment dump.
type MoveRecord struct {
	Game int
	MoveMetric
}

// Writer dumps experiment records as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("games.csv",
		[]string{"id", "agent1", "agent2", "winner", "black_discs", "white_discs", "total_moves", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.ID),
				r.Agent1,
				r.Agent2,
				r.Winner,
				strconv.Itoa(r.BlackDiscs),
				strconv.Itoa(r.WhiteDiscs),
				strconv.Itoa(r.TotalMoves),
				r.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("moves.csv",
		[]string{"game", "step", "player", "depth", "parallel", "nodes", "prunes", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Game),
				strconv.Itoa(r.Step),
				r.Player,
				strconv.Itoa(r.Depth),
				strconv.FormatBool(r.Parallel),
				strconv.FormatInt(r.Nodes, 10),
				strconv.FormatInt(r.Prunes, 10),
				r.Duration.String(),
			}
		})
}

func (w *Writer) WriteTrainingRecords(records []TrainingMetric) error {
	return w.writeCSV("training.csv",
		[]string{"epoch", "steps", "epsilon", "states"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Epoch),
				strconv.Itoa(r.Steps),
				strconv.FormatFloat(r.Epsilon, 'f', 6, 64),
				strconv.Itoa(r.States),
			}
		})
}

func (w *Writer) writeCSV(name string, header []string, rows int, row func(int) []string) error {
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
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
