package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Defaults applied after loading
const (
	DefaultLocale = "fr-CA"
	DefaultFormat = "json"
	DefaultLevel  = "info"
	DefaultPort   = 8080
)

var validate = validator.New()

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := LoadFromBytes(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadFromBytes decodes and validates a YAML configuration and fills defaults
func LoadFromBytes(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Agency.Locale == "" {
		cfg.Agency.Locale = DefaultLocale
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLevel
	}
	return cfg, nil
}

// SelectFeed chooses a feed by name; fallback to first; if none, use top-level GTFS/GTFSRT.
func SelectFeed(name string) (GTFSConfig, GTFSRTConfig) {
	return Config.SelectFeed(name)
}

// SelectFeed chooses a feed of c by name with the same fallbacks as the package-level SelectFeed.
func (c AppConfig) SelectFeed(name string) (GTFSConfig, GTFSRTConfig) {
	if name != "" {
		for _, f := range c.Feeds {
			if f.Name == name {
				return f.GTFS, f.GTFSRT
			}
		}
	}
	if len(c.Feeds) > 0 {
		return c.Feeds[0].GTFS, c.Feeds[0].GTFSRT
	}
	return c.GTFS, c.GTFSRT
}
