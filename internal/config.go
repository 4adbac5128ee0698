package internal

import (
	"fmt"
	"log/slog"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Storage backends.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Storage   StorageConfig     `yaml:"storage"`
	Birthdays BirthdayConfig    `yaml:"birthdays"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Birthdays.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error { return nil }

// StorageConfig selects and parameterizes the snapshot backend.
//
// Backend controls where store snapshots live:
//   - "fs" (default): one JSON file per store under Dir.
//   - "sqlite": a snapshots table in the database file at Path.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
	Path    string `yaml:"path"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	if c.Backend == "" {
		c.Backend = BackendFS
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendFS, BackendSQLite)),
	); err != nil {
		return err
	}
	switch c.Backend {
	case BackendFS:
		if c.Dir == "" {
			return fmt.Errorf("storage: backend is %q but dir is empty", BackendFS)
		}
	case BackendSQLite:
		if c.Path == "" {
			return fmt.Errorf("storage: backend is %q but path is empty", BackendSQLite)
		}
	}
	return nil
}

// BirthdayConfig holds reminder defaults.
type BirthdayConfig struct {
	// DefaultWindow is the lookahead in days used by the birthdays
	// command when no argument is given.
	DefaultWindow int `yaml:"default_window"`
}

// Validate validates the birthday configuration.
func (c *BirthdayConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultWindow, validation.Min(0)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Storage: StorageConfig{
			Backend: BackendFS,
			Dir:     "./data",
			Path:    filepath.Join(".", "raido.db"),
		},
		Birthdays: BirthdayConfig{
			DefaultWindow: 7,
		},
	}
}
