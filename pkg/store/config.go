package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings the store and logger are built from.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFormat() string
}

// LoadConfig reads the optional .weekend config file, then WEEKEND_* env vars.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.weekend.db")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetConfigName(".weekend") // .yaml is implicit
	v.SetEnvPrefix("WEEKEND")
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "WEEKEND_LOG_LEVEL")
	_ = v.BindEnv("log.format", "WEEKEND_LOG_FORMAT")

	if override := os.Getenv("WEEKEND_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:   path,
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Level  string `json:"logLevel"`
	Format string `json:"logFormat"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFormat() string {
	return f.Format
}
