package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Storage  Storage `yaml:"storage"`
	Keys     Keys    `yaml:"keys"`
	UI       UI      `yaml:"ui"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"TICTACTOE_STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path" env:"TICTACTOE_SQLITE_PATH" env-default:"tictactoe.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	// DB is the logical database index.
	DB      int           `yaml:"db" env:"TICTACTOE_REDIS_DB" env-default:"0"`
	Timeout time.Duration `yaml:"timeout" env:"TICTACTOE_REDIS_TIMEOUT" env-default:"2s"`
}

// Keys name the two independent persisted slots.
type Keys struct {
	Stats      string `yaml:"stats" env:"TICTACTOE_STATS_KEY" env-default:"tictactoe_stats"`
	Appearance string `yaml:"appearance" env:"TICTACTOE_APPEARANCE_KEY" env-default:"darkMode"`
}

type UI struct {
	ToastDuration time.Duration `yaml:"toast-duration" env:"TICTACTOE_TOAST_DURATION" env-default:"3s"`
}

// Load - reads the config file when it exists, otherwise the environment only.
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
			return nil, fmt.Errorf("unable to load config from env: %w", err)
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
	switch that.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMemory:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Storage.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
