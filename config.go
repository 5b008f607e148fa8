package minibank

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
		// Node is the snowflake node number used for request ids.
		Node int64 `yaml:"node"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Limits  LimitsConfig  `yaml:"limits"`
	Breaker BreakerConfig `yaml:"breaker"`
}

type LimitsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Write   int64         `yaml:"write"`
	Read    int64         `yaml:"read"`
	Report  int64         `yaml:"report"`
}

type BreakerConfig struct {
	MaxRequests         uint32        `yaml:"max_requests"`
	Interval            time.Duration `yaml:"interval"`
	Timeout             time.Duration `yaml:"timeout"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.Server.Addr = ":3000"
	cfg.Server.Node = 1
	cfg.Log.Level = "info"
	cfg.Limits = LimitsConfig{
		Timeout: 500 * time.Millisecond,
		Write:   64,
		Read:    128,
		Report:  4,
	}
	cfg.Breaker = BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             10 * time.Second,
		ConsecutiveFailures: 5,
	}
	return cfg
}

// LoadConfig decodes YAML from r over DefaultConfig, so absent keys keep
// their defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return &cfg, nil
}
