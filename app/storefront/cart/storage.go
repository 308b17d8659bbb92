package cart

import (
	"encoding/json"
	"fmt"
	"os"
)

// Storage is the persisted-state backend the reducers write through. The
// codec on top of it is versioned so future field additions invalidate old
// blobs explicitly instead of silently corrupting them.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

const schemaVersion = 1

type persistedState struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

func saveItems(storage Storage, items []Item) error {
	data, err := json.Marshal(persistedState{Version: schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode cart state: %w", err)
	}
	return storage.Save(data)
}

func loadItems(storage Storage) ([]Item, error) {
	data, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart state: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse cart state: %w", err)
	}
	if state.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported cart state version %d", state.Version)
	}
	return state.Items, nil
}

// FileStorage keeps the serialized state in a single local file, the process
// equivalent of the browser's local storage.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (f *FileStorage) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o644)
}

func (f *FileStorage) Clear() error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
