package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Cache CacheConfig `mapstructure:"cache"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	Lang           string `mapstructure:"lang" validate:"required,lang"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=0"`
}

type CacheConfig struct {
	Path       string `mapstructure:"path" validate:"required"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=0"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ambr")
	}

	v.SetDefault("api.base_url", "https://gi.yatta.moe/api/v2")
	v.SetDefault("api.lang", "en")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("cache.path", filepath.Join(".cache", "ambr", "cache.db"))
	v.SetDefault("cache.ttl_seconds", 3600)

	if err := v.BindEnv("api.base_url", "AMBR_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind AMBR_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("api.lang", "AMBR_LANG"); err != nil {
		return nil, fmt.Errorf("failed to bind AMBR_LANG environment variable: %w", err)
	}
	if err := v.BindEnv("cache.path", "AMBR_CACHE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind AMBR_CACHE_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("cache.ttl_seconds", "AMBR_CACHE_TTL"); err != nil {
		return nil, fmt.Errorf("failed to bind AMBR_CACHE_TTL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator > %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, translateError(err, trans)
	}

	return &cfg, nil
}
