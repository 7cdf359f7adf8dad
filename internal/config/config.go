package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnknownBackend = errors.New("unknown save slot backend")

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string   `yaml:"log-file" env:"LOG_FILE"`
	HistoryLimit      int      `yaml:"history-limit" env:"HISTORY_LIMIT" env-default:"0"`
	SaveSlot          SaveSlot `yaml:"save-slot"`
	Redis             Redis    `yaml:"redis"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"tictactoe.db"`
}

type SaveSlot struct {
	Backend string `yaml:"backend" env:"SAVE_SLOT_BACKEND" env-default:"file"`
	Path    string `yaml:"path" env:"SAVE_SLOT_PATH" env-default:"TicTacToe.txt"`
	Key     string `yaml:"key" env:"SAVE_SLOT_KEY" env-default:"tictactoe:save"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load - reads the yaml file at path when it exists, the environment otherwise.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.SaveSlot.Backend {
	case "file", "redis", "sqlite":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, that.SaveSlot.Backend)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
