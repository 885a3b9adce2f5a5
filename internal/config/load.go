package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the MESTO_
// prefix with underscores (e.g. MESTO_AUTH_JWT_SECRET) and take precedence
// over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. The JWT secret has no
	// default on purpose: validation fails fast when it is absent.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "mestodb")
	v.SetDefault("auth.jwt_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; environment variables may carry everything.
	}

	v.SetEnvPrefix("MESTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
