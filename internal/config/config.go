// Package config loads server and client settings from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Redis configures the optional transform cache.
type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Server holds the settings of `bwtnet serve`.
type Server struct {
	Bind        string        `mapstructure:"bind"`
	Port        int           `mapstructure:"port"`
	MetricsAddr string        `mapstructure:"metrics_addr"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	Redis       Redis         `mapstructure:"redis"`
}

// Client holds the settings of `bwtnet send`.
type Client struct {
	Address   string `mapstructure:"address"`
	Port      int    `mapstructure:"port"`
	Output    string `mapstructure:"output"`
	Verbosity int    `mapstructure:"verbosity"`
	LogLevel  string `mapstructure:"log_level"`
}

// File is the layout of a configuration file. Either section may be absent.
type File struct {
	Server Server `mapstructure:"server"`
	Client Client `mapstructure:"client"`
}

// DefaultServer returns the server defaults. The bind address is the host name,
// as with the original deployment.
func DefaultServer() Server {
	return Server{
		Bind:     hostname(),
		Port:     domain.DefaultPort,
		LogLevel: "info",
	}
}

// DefaultClient returns the client defaults.
func DefaultClient() Client {
	return Client{
		Address:   hostname(),
		Port:      domain.DefaultPort,
		Output:    "output.txt",
		Verbosity: 1,
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*File, error) {
	cfg := &File{Server: DefaultServer(), Client: DefaultClient()}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode applies YAML data on top of cfg.
// Values are weakly typed: "5500" is accepted for a port and "30s" for a duration.
func Decode(data []byte, cfg *File) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the server settings.
func (s Server) Validate() error {
	if err := validatePort(s.Port); err != nil {
		return err
	}
	if s.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must not be negative, got %s", s.ReadTimeout)
	}
	return nil
}

// Validate checks the client settings.
func (c Client) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return err
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity must be 0, 1 or 2, got %d", c.Verbosity)
	}
	if c.Output == "" {
		return fmt.Errorf("output file name is required")
	}
	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPort, port)
	}
	return nil
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
