// Package config loads the layered base+environment configuration
// documents described in spec.md §6.3 using viper, and returns a
// read-only Configuration value for the rest of the process to consume.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
)

// Environment is the overlay selected by APP_ENVIRON.
type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

func parseEnvironment(s string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case Local:
		return Local, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("unsupported APP_ENVIRON %q, use %q or %q", s, Local, Production)
	}
}

// Credential is reserved for future authenticated streams; nothing in the
// core reads it (spec.md §6.3: "reserved; not used by core").
type Credential struct {
	UserID string `mapstructure:"user_id"`
	Token  string `mapstructure:"token"`
}

// ExchangeConfig is one entry of the `exchanges` list.
type ExchangeConfig struct {
	Exchange   string      `mapstructure:"exchange"`
	Channel    string      `mapstructure:"channel"`
	URL        string      `mapstructure:"url"`
	Credential *Credential `mapstructure:"credential"`
}

// Venue parses the configured exchange tag into a model.Venue.
func (e ExchangeConfig) Venue() (model.Venue, error) {
	return model.ParseVenue(e.Exchange)
}

// Server is the gRPC bind address.
type Server struct {
	Hostname string `mapstructure:"hostname"`
	Port     uint16 `mapstructure:"port"`
}

// Addr renders the bind address the server listens on. net.JoinHostPort
// brackets IPv6 literals (e.g. "::1" -> "[::1]:12000"), which a plain
// Sprintf would not: an unbracketed multi-colon host is not valid
// host:port syntax and net.Listen would reject it.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Hostname, strconv.Itoa(int(s.Port)))
}

// Configuration is the fully-materialized record the core consumes. It is
// read-only after Load returns; nothing downstream re-reads the
// environment or the filesystem (spec.md §5 "Shared-resource policy").
type Configuration struct {
	ResultSize int              `mapstructure:"result_size"`
	Exchanges  []ExchangeConfig `mapstructure:"exchanges"`
	Server     Server           `mapstructure:"server"`
}

// Validate enforces the §3 invariants Load cannot express through
// mapstructure tags alone.
func (c Configuration) Validate() error {
	if c.ResultSize < 1 {
		return apperr.New(apperr.Config, "Configuration.Validate", "result_size must be >= 1")
	}
	for _, e := range c.Exchanges {
		if _, err := e.Venue(); err != nil {
			return apperr.Wrap(apperr.Config, "Configuration.Validate", err)
		}
	}
	return nil
}

// Load reads the `base` document plus the `{local,production}` overlay
// named by APP_ENVIRON (default local) from CONFIG_PATH (default
// ./settings), exactly as spec.md §6.3 describes.
func Load() (Configuration, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", err)
		}
		path = filepath.Join(cwd, "settings")
	}

	environ, err := parseEnvironment(envOrDefault("APP_ENVIRON", string(Local)))
	if err != nil {
		return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", err)
	}

	v := viper.New()
	v.SetConfigName("base")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", fmt.Errorf("reading base config: %w", err))
	}

	overlay := viper.New()
	overlay.SetConfigName(string(environ))
	overlay.SetConfigType("yaml")
	overlay.AddConfigPath(path)
	if err := overlay.ReadInConfig(); err != nil {
		return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", fmt.Errorf("reading %s overlay: %w", environ, err))
	}
	if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
		return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", fmt.Errorf("merging %s overlay: %w", environ, err))
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, apperr.Wrap(apperr.Config, "config.Load", fmt.Errorf("unmarshalling config: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
