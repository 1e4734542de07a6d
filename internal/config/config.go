package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/zorah/internal/feed"
)

// Config holds the full application configuration.
type Config struct {
	Crawl  CrawlConfig  `yaml:"crawl" mapstructure:"crawl"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// CrawlConfig locates the crawl service.
type CrawlConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// Timeout returns the request bound, zero meaning none.
func (c CrawlConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ServerConfig configures the web front end.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	SubmitRate     float64  `yaml:"submit_rate" mapstructure:"submit_rate"`
	SubmitBurst    int      `yaml:"submit_burst" mapstructure:"submit_burst"`
}

// OutputConfig configures terminal output of the crawl command.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ZORAH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("crawl.base_url", "http://127.0.0.1:8080")
	v.SetDefault("crawl.timeout_secs", 0)
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.submit_rate", 1.0)
	v.SetDefault("server.submit_burst", 3)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on.
func (c *Config) Validate(mode string) error {
	var errs []string

	u, err := url.Parse(c.Crawl.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "crawl.base_url must be an absolute URL")
	}
	if c.Crawl.TimeoutSecs < 0 {
		errs = append(errs, "crawl.timeout_secs must be >= 0")
	}

	switch mode {
	case "crawl":
		if _, err := feed.ParseFormat(c.Output.Format); err != nil {
			errs = append(errs, "output.format must be one of text, markdown, html, json, yaml")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Server.SubmitRate <= 0 {
			errs = append(errs, "server.submit_rate must be > 0")
		}
		if c.Server.SubmitBurst < 1 {
			errs = append(errs, "server.submit_burst must be >= 1")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
