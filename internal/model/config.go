package model

import "time"

// Config holds all runtime settings
type Config struct {
	API         APIConfig         `yaml:"api" mapstructure:"api"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Consent     ConsentConfig     `yaml:"consent" mapstructure:"consent"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Print       PrintConfig       `yaml:"print" mapstructure:"print"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// APIConfig configures the prediction service client
type APIConfig struct {
	BaseURL          string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout          time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent        string        `yaml:"user_agent" mapstructure:"user_agent"`
	BreakerFailures  uint32        `yaml:"breaker_failures" mapstructure:"breaker_failures"`   // consecutive failures before opening
	BreakerCooldown  time.Duration `yaml:"breaker_cooldown" mapstructure:"breaker_cooldown"`   // open state duration
	MaxResponseBytes int64         `yaml:"max_response_bytes" mapstructure:"max_response_bytes"`
	HTTPProxy        string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy       string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy          string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig configures prediction caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir" mapstructure:"disk_dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
	RedisAddr string        `yaml:"redis_addr" mapstructure:"redis_addr"` // empty disables the shared tier
}

// ServerConfig configures the dashboard HTTP server
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	RateLimit       float64       `yaml:"rate_limit" mapstructure:"rate_limit"` // requests/sec per client
	RateBurst       int           `yaml:"rate_burst" mapstructure:"rate_burst"`
	SessionCapacity int           `yaml:"session_capacity" mapstructure:"session_capacity"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// ConsentConfig configures the anonymized consent log
type ConsentConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int     `yaml:"workers" mapstructure:"workers"`
	Rate    float64 `yaml:"rate" mapstructure:"rate"` // requests/sec to the prediction service
	Burst   int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Language      string `yaml:"language" mapstructure:"language"`
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// PrintConfig configures PDF rendering through headless Chrome
type PrintConfig struct {
	ChromePath string        `yaml:"chrome_path" mapstructure:"chrome_path"` // empty uses the default lookup
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LLMConfig configures the optional second-opinion narrative
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "ollama" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Pretty bool   `yaml:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:          "http://127.0.0.1:8000",
			Timeout:          30 * time.Second,
			UserAgent:        "cardiorisk/0.3",
			BreakerFailures:  5,
			BreakerCooldown:  30 * time.Second,
			MaxResponseBytes: 1_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 10 * time.Minute,
			DiskDir:   ".cardiorisk-cache",
			DiskTTL:   24 * time.Hour,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			RateLimit:       5,
			RateBurst:       10,
			SessionCapacity: 1024,
			ShutdownTimeout: 10 * time.Second,
		},
		Consent: ConsentConfig{
			Enabled: true,
			Path:    "data/consent.db",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
			Rate:    2,
			Burst:   4,
		},
		Output: OutputConfig{
			Language:      "en",
			IncludeFooter: true,
		},
		Print: PrintConfig{
			Timeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
