package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// VolunteerDefaults are the pools used until a pool has been saved
type VolunteerDefaults struct {
	Stage          []string `yaml:"stage,omitempty" validate:"dive,required"`
	Sanchalan      []string `yaml:"sanchalan,omitempty" validate:"dive,required"`
	GyanPracharaks []string `yaml:"gyanPracharaks,omitempty" validate:"dive,required"`
}

// Author signs version history commits
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty" validate:"omitempty,email"`
}

// Config represents the application configuration
type Config struct {
	StorageDir        string             `yaml:"storageDir" validate:"required"`
	LogsDir           string             `yaml:"logsDir,omitempty"`
	VersionHistory    bool               `yaml:"versionHistory,omitempty"`
	RandomSeed        *uint64            `yaml:"randomSeed,omitempty"`
	StartWeek         string             `yaml:"startWeek,omitempty"`
	Zones             []model.Zone       `yaml:"zones,omitempty" validate:"dive"`
	DefaultVolunteers *VolunteerDefaults `yaml:"defaultVolunteers,omitempty"`
	Author            Author             `yaml:"author,omitempty"`
}

// StartDate parses StartWeek. The zero time is returned when it is not set
func (c *Config) StartDate() (time.Time, error) {
	if c.StartWeek == "" {
		return time.Time{}, nil
	}
	return model.ParseWeekID(c.StartWeek)
}

// Pools returns the configured default pools
func (c *Config) Pools() model.VolunteerPools {
	if c.DefaultVolunteers == nil {
		return model.VolunteerPools{}
	}
	return model.VolunteerPools{
		Stage:          c.DefaultVolunteers.Stage,
		Sanchalan:      c.DefaultVolunteers.Sanchalan,
		GyanPracharaks: c.DefaultVolunteers.GyanPracharaks,
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for an environment.
// It looks for seva_config.<env>.yaml and then seva_config.yaml, first in the current
// directory and then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(configFileNames(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Relative storage paths are resolved against the config file
	if cfg.StorageDir != "" && !filepath.IsAbs(cfg.StorageDir) {
		cfg.StorageDir = filepath.Join(filepath.Dir(path), cfg.StorageDir)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the start week and the zone IDs
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := cfg.StartDate(); err != nil {
		return fmt.Errorf("invalid startWeek: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Zones))
	for i, zone := range cfg.Zones {
		if seen[zone.ID] {
			return fmt.Errorf("duplicate zone id %q in zones[%d]", zone.ID, i)
		}
		seen[zone.ID] = true
	}

	return nil
}

func configFileNames(env string) []string {
	names := []string{}
	if env != "" {
		names = append(names, fmt.Sprintf("seva_config.%s.yaml", env))
	}
	return append(names, "seva_config.yaml")
}

// findConfigFile searches for the config file names in the current directory and home directory
func findConfigFile(names []string) (string, error) {
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range names {
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
