package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

const (
	defaultDBPath      = "dwh.duckdb"
	defaultDataDir     = "data"
	defaultBackupDir   = "backups"
	defaultLogDir      = "logs"
	defaultMemoryLimit = "4GB"
	defaultThreads     = 4
	defaultLogLevel    = "info"

	// DatasetName is the single dataset managed by the warehouse.
	DatasetName = "case_history"
)

type Config struct {
	DBPath      string
	DataDir     string
	BackupDir   string
	LogDir      string
	MemoryLimit string
	Threads     int
	LogLevel    string
}

var once sync.Once
var config *Config
var configErr error

// GetConfig loads the configuration once and returns the cached instance.
func GetConfig() (*Config, error) {
	once.Do(func() {
		config, configErr = Load(".env")
	})
	return config, configErr
}

// Load reads configuration from the given .env file and the environment.
// The file is optional; CASEDWH_* environment variables alone are enough.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.SetEnvPrefix("CASEDWH")
	v.AutomaticEnv()

	v.SetDefault("DB_PATH", defaultDBPath)
	v.SetDefault("DATA_DIR", defaultDataDir)
	v.SetDefault("BACKUP_DIR", defaultBackupDir)
	v.SetDefault("LOG_DIR", defaultLogDir)
	v.SetDefault("MEMORY_LIMIT", defaultMemoryLimit)
	v.SetDefault("THREADS", defaultThreads)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DBPath:      v.GetString("DB_PATH"),
		DataDir:     v.GetString("DATA_DIR"),
		BackupDir:   v.GetString("BACKUP_DIR"),
		LogDir:      v.GetString("LOG_DIR"),
		MemoryLimit: v.GetString("MEMORY_LIMIT"),
		Threads:     v.GetInt("THREADS"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Threads <= 0 {
		return fmt.Errorf("THREADS must be positive, got %d", c.Threads)
	}
	return nil
}

// RawRoot is the base directory of the raw zone for the managed dataset.
func (c *Config) RawRoot() string {
	return filepath.Join(c.DataDir, "raw", DatasetName)
}

// StagingDir is the directory holding staging zone exports.
func (c *Config) StagingDir() string {
	return filepath.Join(c.DataDir, "staging")
}

// WarehouseDir is the directory holding warehouse zone exports.
func (c *Config) WarehouseDir() string {
	return filepath.Join(c.DataDir, "warehouse")
}
