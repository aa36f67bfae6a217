package tui

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const PrefsFileName = "tui.json"

// Preferences are the TUI settings that survive restarts.
type Preferences struct {
	Language string `json:"language,omitempty"`
}

type prefsStorage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

type filePrefsStorage struct {
	filePath string
}

func newFilePrefsStorage(dir string) filePrefsStorage {
	return filePrefsStorage{
		filePath: filepath.Join(dir, PrefsFileName),
	}
}

func (s filePrefsStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s filePrefsStorage) Write(data []byte) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o711); err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func loadPreferences(s prefsStorage) (Preferences, error) {
	data, err := s.Read()
	if err != nil {
		return Preferences{}, err
	}
	if data == nil {
		return Preferences{}, nil
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

func savePreferences(s prefsStorage, p Preferences) error {
	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return s.Write(append(payload, '\n'))
}
