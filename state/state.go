// Package state keeps UI preferences between runs of the terminal app.
// The signed-in flag is deliberately absent: every run starts at the first
// auth step.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const DefaultFile = ".state.json"

type AppState struct {
	LastPage       string `json:"last_page,omitempty"`
	SelectedCardID int64  `json:"selected_card_id,omitempty"`
}

// Load reads the state file. A missing file yields the zero state.
func Load(path string) (AppState, error) {
	b, err := os.ReadFile(resolve(path))
	if errors.Is(err, fs.ErrNotExist) {
		return AppState{}, nil
	}
	if err != nil {
		return AppState{}, err
	}
	var s AppState
	if err := json.Unmarshal(b, &s); err != nil {
		return AppState{}, err
	}
	return s, nil
}

func Save(path string, s AppState) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(resolve(path), b, 0644)
}

func resolve(path string) string {
	if path == "" {
		path = DefaultFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	wd, _ := os.Getwd()
	return filepath.Join(wd, path)
}
