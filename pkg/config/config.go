package config

import (
	"os"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	Environment               string        `koanf:"environment"`
	FrontendURL               string        `koanf:"frontend_url"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

const configFileENV = "CONFIG_FILE"

// New loads config from an optional YAML file (CONFIG_FILE, default
// ./bookstand.yaml) with environment variables taking precedence over file
// values, which take precedence over defaults.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := defaultConfig()
	cfg.Hostname = hostname

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = "./bookstand.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	}

	// Env vars map onto the snake_case keys, e.g. DATABASE_FILE_PATH.
	err = k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.DatabaseFilePath == "" {
		key := toSnakeCase("DatabaseFilePath")
		return nil, errors.Errorf(
			"missing required config: set the %s env var or %s in the config file",
			strings.ToUpper(key), key,
		)
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests: in-memory database, local
// bind address, no config file or env involved.
func NewForTest() *Config {
	cfg := defaultConfig()
	cfg.DatabaseFilePath = ":memory:"
	cfg.Environment = "test"
	cfg.Hostname = "test"
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        3,
		Environment:               "development",
		FrontendURL:               "http://localhost:6060",
		ServerHost:                "0.0.0.0",
		ServerPort:                4317,
	}
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
