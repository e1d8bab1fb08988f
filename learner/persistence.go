package learner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrImport reports that a serialized table could not be loaded.
var ErrImport = errors.New("table import failed")

// Save writes the table as a nested JSON mapping, state key to move notation
// to value. Save and Load round-trip exactly.
func (l *QLearner) Save(path string) error {
	data, err := json.Marshal(l.table)
	if err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write table %s: %w", path, err)
	}
	return nil
}

// Load replaces the table with the mapping serialized at path. A missing or
// malformed source yields an ErrImport carrying the cause; the learner keeps
// its previous table and behaves as pure-random while empty.
func (l *QLearner) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrImport, path, err)
	}
	table := make(map[string]map[string]int)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrImport, path, err)
	}
	l.table = table
	return nil
}
