package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"web_controls/domain/interfaces"
)

const (
	stateFile     = "state.json"
	screenshotDir = "screenshots"
)

type browserState struct {
	dir       string
	statePath string
}

// NewBrowserState - creates new browser state storage rooted at dir.
// An empty dir falls back to ~/.web_controls.
func NewBrowserState(dir string) (interfaces.Storage, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		dir = filepath.Join(homeDir, ".web_controls")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &browserState{
		dir:       dir,
		statePath: filepath.Join(dir, stateFile),
	}, nil
}

// SaveState - saves browser state to file
func (s *browserState) SaveState(state map[string]interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.statePath, data, 0644)
}

// LoadState - loads browser state from file
func (s *browserState) LoadState() (map[string]interface{}, error) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]interface{}), nil
		}
		return nil, err
	}

	var state map[string]interface{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("corrupt state file %s: %w", s.statePath, err)
	}

	return state, nil
}

// SaveScreenshot - writes a PNG under the screenshots directory
func (s *browserState) SaveScreenshot(name string, png []byte) (string, error) {
	dir := filepath.Join(s.dir, screenshotDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}
