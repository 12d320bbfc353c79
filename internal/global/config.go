package global

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Environment variables override the config file and use this prefix
const ENV_PREFIX = "DONDOZO_"

type Config struct {
	Debug bool `json:"debug" env:"DEBUG"`
	// Directory for rolling log files. Empty disables file logging.
	LogDir      string `json:"log_dir" env:"LOG_DIR"`
	LogMaxBytes int64  `json:"log_max_bytes" env:"LOG_MAX_BYTES"`
	// Number of log files kept, the live one included
	LogFiles int `json:"log_files" env:"LOG_FILES"`

	BranchOnDamage  bool `json:"branch_on_damage" env:"BRANCH_ON_DAMAGE"`
	UseLastUsedMove bool `json:"use_last_used_move" env:"USE_LAST_USED_MOVE"`
	Color           bool `json:"color" env:"COLOR"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "dondozo")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func DefaultConfig() Config {
	return populateConfig(Config{Color: true})
}

// LoadConfig reads the config file at path, creating it with defaults when it is missing or empty.
// Environment variables are applied last.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	if len(contents) == 0 {
		if err := SaveConfig(path, config); err != nil {
			return config, err
		}
	} else if err := json.Unmarshal(contents, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: ENV_PREFIX}); err != nil {
		return config, fmt.Errorf("parse env: %w", err)
	}

	return populateConfig(config), nil
}

func SaveConfig(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configBytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, configBytes, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}

func populateConfig(config Config) Config {
	if config.LogDir == "" {
		config.LogDir = filepath.Join(DefaultConfigDir(), "logs")
	}
	if config.LogMaxBytes <= 0 {
		config.LogMaxBytes = maxLogSize
	}
	if config.LogFiles <= 0 {
		config.LogFiles = maxLogs
	}

	return config
}
