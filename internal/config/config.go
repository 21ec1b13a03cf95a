package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth" validate:"required"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Addr    string        `mapstructure:"addr" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type CatalogConfig struct {
	Sources []string `mapstructure:"sources" validate:"required,min=1"`
}

type StorageConfig struct {
	DataFile string `mapstructure:"data_file" validate:"required"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("app.addr", "APP_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ADDR: %w", err)
	}
	if err := v.BindEnv("storage.data_file", "DATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind DATA_FILE: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind JWT_SECRET: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// WORD_DATA_URL overrides the configured sources, keeping them as
	// fallbacks.
	if override := os.Getenv("WORD_DATA_URL"); override != "" {
		cfg.Catalog.Sources = append([]string{override}, cfg.Catalog.Sources...)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
