package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/marcelsud/webhookconfig-repository/bitbucket"
	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

/* Config holds the provider settings
 * Values come from an optional .env TOML file, environment variables win
 */
type Config struct {
	Port        string `mapstructure:"PORT"`
	APIEndpoint string `mapstructure:"BITBUCKET_API_ENDPOINT"`
	APIVersion  string `mapstructure:"BITBUCKET_API_VERSION"`
	ErrorMode   string `mapstructure:"ERROR_MODE"`
	ReadMode    string `mapstructure:"READ_MODE"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"PORT":                   "8080",
	"BITBUCKET_API_ENDPOINT": bitbucket.DefaultAPIEndpoint,
	"BITBUCKET_API_VERSION":  bitbucket.DefaultAPIVersion,
	"ERROR_MODE":             resource.Preserve.String(),
	"READ_MODE":              resource.Echo.String(),
	"LOG_LEVEL":              "info",
}

// GetConfig loads .env from the working directory when present
func GetConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	return load(v)
}

// LoadFile loads the TOML file at path, which must exist
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func load(v *viper.Viper) (*Config, error) {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	endpoint, err := url.Parse(c.APIEndpoint)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return fmt.Errorf("BITBUCKET_API_ENDPOINT must be an absolute URL: %q", c.APIEndpoint)
	}
	if err := resource.NewErrorMode(c.ErrorMode).Validate(); err != nil {
		return fmt.Errorf("ERROR_MODE must be preserve or flatten: %q", c.ErrorMode)
	}
	if err := resource.NewReadMode(c.ReadMode).Validate(); err != nil {
		return fmt.Errorf("READ_MODE must be echo or fetch: %q", c.ReadMode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL must be a zerolog level: %q", c.LogLevel)
	}
	return nil
}

// HandlerOptions converts the mode settings for resource.NewHandler
func (c *Config) HandlerOptions() resource.Options {
	return resource.Options{
		ErrorMode: resource.NewErrorMode(c.ErrorMode),
		ReadMode:  resource.NewReadMode(c.ReadMode),
	}
}
