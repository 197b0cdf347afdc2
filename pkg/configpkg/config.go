// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables
// once at startup and never mutated afterwards.
type Config struct {
	Port             string `mapstructure:"PORT"`
	Environment      string `mapstructure:"ENVIRONMENT"`
	APIVersion       string `mapstructure:"API_VERSION"`
	BaseURL          string `mapstructure:"BASE_URL"`
	ProductionAPIURL string `mapstructure:"PRODUCTION_API_URL"`
	StagingAPIURL    string `mapstructure:"STAGING_API_URL"`
	TrustProxy       bool   `mapstructure:"TRUST_PROXY"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from an app.env file in the given directory or
// from environment variables. A missing config file is not an error: the
// defaults plus the environment are enough to run.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("API_VERSION", "v1")
	v.SetDefault("BASE_URL", "")
	v.SetDefault("PRODUCTION_API_URL", "")
	v.SetDefault("STAGING_API_URL", "")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// Origins returns the comma-separated ALLOWED_ORIGINS value as a list,
// defaulting to the wildcard origin.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
