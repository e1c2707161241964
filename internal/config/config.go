package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Scrape struct {
		// Outbound fetch timeout. The target page is the only blocking
		// external resource in a scrape request.
		TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`

		// Per-host rate limit for outbound fetches.
		HostRatePerSec float64 `yaml:"host_rate_per_sec" json:"host_rate_per_sec"`
		HostRateBurst  int     `yaml:"host_rate_burst" json:"host_rate_burst"`
	} `yaml:"scrape" json:"scrape"`

	Sessions struct {
		// Practice sessions older than this are pruned. 0 disables pruning.
		RetentionDays int `yaml:"retention_days" json:"retention_days"`

		PruneIntervalMinutes int `yaml:"prune_interval_minutes" json:"prune_interval_minutes"`
	} `yaml:"sessions" json:"sessions"`

	AI struct {
		// Which provider's API key the secrets endpoint manages.
		Provider string `yaml:"provider" json:"provider"`
	} `yaml:"ai" json:"ai"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) ScrapeTimeout() time.Duration {
	if c.Scrape.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

func (c Config) PruneInterval() time.Duration {
	if c.Sessions.PruneIntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Sessions.PruneIntervalMinutes) * time.Minute
}
