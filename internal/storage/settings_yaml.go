package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"danaoverlay/internal/core/model"
	"danaoverlay/internal/platform"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkTime    int     `yaml:"work_time"`
	PauseTime   int     `yaml:"pause_time"`
	TotalRounds int     `yaml:"total_rounds"`
	ScaleFactor float64 `yaml:"scale_factor"`
	WindowPos   []int   `yaml:"window_pos,omitempty,flow"`
}

// Store persists the timer configuration as a small YAML record.
type Store struct {
	path   string
	hider  platform.FileHider
	logger *slog.Logger
}

// NewStore creates a store backed by path. A nil hider disables hiding.
func NewStore(path string, hider platform.FileHider) *Store {
	if hider == nil {
		hider = platform.NoopHider()
	}
	return &Store{
		path:   path,
		hider:  hider,
		logger: slog.Default().With("path", path),
	}
}

// DefaultPath returns <config dir>/<appName>/settings.yaml.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Path returns the backing file.
func (store *Store) Path() string {
	return store.path
}

// Load returns the stored configuration. Any failure yields defaults and a warning.
func (store *Store) Load() model.TimerConfig {
	config, err := store.LoadSettings()
	if err != nil {
		store.logger.Warn("settings unavailable, using defaults", "error", err)
		return model.DefaultTimerConfig()
	}
	return config
}

// LoadSettings reads the record. A missing file is not an error.
func (store *Store) LoadSettings() (model.TimerConfig, error) {
	config := model.DefaultTimerConfig()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config, nil
}

// Save overwrites the record with config, including its window position.
func (store *Store) Save(config model.TimerConfig) error {
	fileData := yamlSettings{
		WorkTime:    config.WorkSeconds,
		PauseTime:   config.PauseSeconds,
		TotalRounds: config.TotalRounds,
		ScaleFactor: config.ScaleFactor,
	}
	if config.WindowPosition != nil {
		fileData.WindowPos = []int{config.WindowPosition.X, config.WindowPosition.Y}
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	hide := store.hider.SupportsHiddenAttribute()
	if hide {
		if err := store.hider.Unhide(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			store.logger.Debug("clear hidden attribute", "error", err)
		}
	}

	if err := writeFileAtomic(store.path, serialized); err != nil {
		return err
	}

	if hide {
		if err := store.hider.Hide(store.path); err != nil {
			store.logger.Debug("set hidden attribute", "error", err)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("chmod settings file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(config *model.TimerConfig, fileData yamlSettings) {
	if model.ValidDuration(fileData.WorkTime) {
		config.WorkSeconds = fileData.WorkTime
	}
	if model.ValidDuration(fileData.PauseTime) {
		config.PauseSeconds = fileData.PauseTime
	}
	if model.ValidRounds(fileData.TotalRounds) {
		config.TotalRounds = fileData.TotalRounds
	}
	if model.ValidScale(fileData.ScaleFactor) {
		config.ScaleFactor = fileData.ScaleFactor
	}
	if len(fileData.WindowPos) == 2 {
		config.WindowPosition = &model.Position{X: fileData.WindowPos[0], Y: fileData.WindowPos[1]}
	}
}
