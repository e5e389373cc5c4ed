package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

const (
	maxPort = 65535
	// session cache entries expire in whole seconds
	minSessionCacheTTL = time.Second
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsHost string `toml:"metrics_host"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// scoring
	ReferencesPath      string  `toml:"references_path"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	AngleThreshold      float64 `toml:"angle_threshold"`
	// sessions
	CheckInterval   Duration `toml:"check_interval"`
	SessionTTL      Duration `toml:"session_ttl"`
	SessionCacheMB  int      `toml:"session_cache_mb"`
	SessionCacheTTL Duration `toml:"session_cache_ttl"`
	// feedback
	FeedbackQueueSize   int      `toml:"feedback_queue_size"`
	FeedbackDedupWindow Duration `toml:"feedback_dedup_window"`
	// empty means feedback is only logged
	SpeakerURL string `toml:"speaker_url"`

	ScoreRateLimitPerMin int `toml:"score_rate_limit_per_min"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration reads values like "5s" or "24h" from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the validated config of env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s missing in %s", env, path)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.CheckInterval.Duration == 0 {
		c.CheckInterval.Duration = 5 * time.Second
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 2 * time.Hour
	}
	if c.SessionCacheMB == 0 {
		c.SessionCacheMB = 10
	}
	if c.SessionCacheTTL.Duration == 0 {
		c.SessionCacheTTL.Duration = time.Minute
	}
	if c.FeedbackQueueSize == 0 {
		c.FeedbackQueueSize = 32
	}
	if c.FeedbackDedupWindow.Duration == 0 {
		c.FeedbackDedupWindow.Duration = c.CheckInterval.Duration
	}
	if c.ScoreRateLimitPerMin == 0 {
		c.ScoreRateLimitPerMin = 120
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 || c.Port > maxPort {
		err = multierr.Append(err, fmt.Errorf("port must be in range 1-%d, got %d", maxPort, c.Port))
	}
	if c.MetricsPort <= 0 || c.MetricsPort > maxPort {
		err = multierr.Append(err, fmt.Errorf("metrics port must be in range 1-%d, got %d", maxPort, c.MetricsPort))
	}
	if c.ReferencesPath == "" {
		err = multierr.Append(err, errors.New("references path not set"))
	}
	if c.SimilarityThreshold <= 0 {
		err = multierr.Append(err, errors.New("similarity threshold must be positive"))
	}
	if c.AngleThreshold <= 0 {
		err = multierr.Append(err, errors.New("angle threshold must be positive"))
	}
	if c.CheckInterval.Duration <= 0 {
		err = multierr.Append(err, errors.New("check interval must be positive"))
	}
	if c.SessionTTL.Duration <= 0 {
		err = multierr.Append(err, errors.New("session ttl must be positive"))
	}
	if c.SessionCacheMB <= 0 {
		err = multierr.Append(err, errors.New("session cache size must be positive"))
	}
	if c.SessionCacheTTL.Duration < minSessionCacheTTL {
		err = multierr.Append(err, fmt.Errorf("session cache ttl must be at least %s", minSessionCacheTTL))
	}
	if c.FeedbackDedupWindow.Duration < 0 {
		err = multierr.Append(err, errors.New("feedback dedup window must not be negative"))
	}
	if c.ScoreRateLimitPerMin <= 0 {
		err = multierr.Append(err, errors.New("score rate limit must be positive"))
	}
	if c.FeedbackQueueSize <= 0 {
		err = multierr.Append(err, errors.New("feedback queue size must be positive"))
	}
	return err
}
