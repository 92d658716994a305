// Package config loads the client configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

type Config struct {
	Env        string `yaml:"env"`
	LogLevel   string `yaml:"log_level"`
	Client     `yaml:"client"`
	StubServer `yaml:"stub_server"`
}

// Client configures the connection to the shortening backend.
type Client struct {
	// BaseURL is the root of the backend API, also used to present short links.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a whole request round trip. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

var defaultClient = Client{
	BaseURL: "http://localhost:8080",
}

// StubServer configures the local fake backend.
type StubServer struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	SecretKey    string        `yaml:"secret_key"`
	TokenExp     time.Duration `yaml:"token_exp"`
}

var defaultStubServer = StubServer{
	Port:         8080,
	ReadTimeout:  5 * time.Second,
	WriteTimeout: 10 * time.Second,
	IdleTimeout:  time.Minute,
	SecretKey:    "supersecretkey",
	TokenExp:     3 * time.Hour,
}

func (s *StubServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.LogLevel = "info"
	cfg.Client = defaultClient
	cfg.StubServer = defaultStubServer
}
