package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings is the user-editable state that survives restarts: the
// video-API credential and the preferred response language.
type Settings struct {
	YouTubeAPIKey string `json:"youtube_api_key"`
	Language      string `json:"language"`
}

// SettingsStore persists Settings as a JSON file under the data dir.
type SettingsStore struct {
	filePath string

	mu       sync.RWMutex
	settings Settings
}

// NewSettingsStore loads persisted settings, falling back to the given
// defaults for any field not yet stored.
func NewSettingsStore(dataDir string, defaults Settings) (*SettingsStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	ss := &SettingsStore{
		filePath: filepath.Join(dataDir, "settings.json"),
		settings: defaults,
	}
	if err := ss.load(); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return ss, nil
}

// Get returns a copy of the current settings.
func (ss *SettingsStore) Get() Settings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.settings
}

// SetYouTubeAPIKey stores and persists the video-API credential.
func (ss *SettingsStore) SetYouTubeAPIKey(key string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.settings.YouTubeAPIKey = key
	return ss.saveLocked()
}

// SetLanguage stores and persists the response language code.
func (ss *SettingsStore) SetLanguage(lang string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.settings.Language = lang
	return ss.saveLocked()
}

func (ss *SettingsStore) load() error {
	file, err := os.Open(ss.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	var stored Settings
	if err := json.NewDecoder(file).Decode(&stored); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	if stored.YouTubeAPIKey != "" {
		ss.settings.YouTubeAPIKey = stored.YouTubeAPIKey
	}
	if stored.Language != "" {
		ss.settings.Language = stored.Language
	}
	return nil
}

func (ss *SettingsStore) saveLocked() error {
	file, err := os.Create(ss.filePath)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ss.settings)
}
