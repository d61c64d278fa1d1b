package model

import "time"

// Config is the full runtime configuration, populated from defaults, the
// config file, LEGATO_* environment variables and CLI flags (in ascending
// priority).
type Config struct {
	Store struct {
		Dir           string        `yaml:"dir"`            // clause library directory (YAML files)
		CacheEnabled  bool          `yaml:"cache_enabled"`  // read-through clause cache
		CacheTTL      time.Duration `yaml:"cache_ttl"`
		CacheCleanup  time.Duration `yaml:"cache_cleanup"`
	} `yaml:"store"`

	Assembly struct {
		FetchConcurrency int `yaml:"fetch_concurrency"` // parallel clause fetches; 1 = sequential
	} `yaml:"assembly"`

	Batch struct {
		Concurrency    int     `yaml:"concurrency"`
		RatePerSecond  float64 `yaml:"rate_per_second"` // throttle against a shared clause store
		Burst          int     `yaml:"burst"`
	} `yaml:"batch"`

	Output struct {
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Store.Dir = ""
	cfg.Store.CacheEnabled = true
	cfg.Store.CacheTTL = 5 * time.Minute
	cfg.Store.CacheCleanup = 10 * time.Minute
	cfg.Assembly.FetchConcurrency = 4
	cfg.Batch.Concurrency = 4
	cfg.Batch.RatePerSecond = 20
	cfg.Batch.Burst = 5
	cfg.Output.Verbose = false
	return cfg
}
