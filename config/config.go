// Package config handles application configuration loading and validation.
//
// Configuration is read from config.yml, overridden by environment variables
// (optionally from a .env file) and validated using struct tags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yml"

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:           8080,
			Mode:           "release",
			AllowedOrigins: []string{"*"},
		},
		Network: NetworkConfig{
			Source:          "static",
			Strictness:      "strict",
			DuplicatePolicy: "reject",
		},
		Routing: RoutingConfig{
			DefaultStrategy: "combined",
			CombinedScale:   1000,
			TotalsMinLegs:   2,
		},
	}
}

// Load reads the configuration from path (CONFIG_PATH or config.yml when
// empty). A missing file is not an error: defaults and environment apply.
func Load(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes and validates a YAML document on top of the defaults.
func Parse(raw []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(strings.TrimPrefix(port, ":"))
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("NETWORK_SOURCE"); v != "" {
		cfg.Network.Source = strings.ToLower(v)
	}
	if v := os.Getenv("NETWORK_PATH"); v != "" {
		cfg.Network.Path = v
	}
	if v := os.Getenv("LOCATIONS_PATH"); v != "" {
		cfg.Network.LocationsPath = v
	}
	if v := os.Getenv("NETWORK_STRICTNESS"); v != "" {
		cfg.Network.Strictness = strings.ToLower(v)
	}
	if v := os.Getenv("DEFAULT_STRATEGY"); v != "" {
		cfg.Routing.DefaultStrategy = strings.ToLower(v)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
