package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the full application configuration.
type Config struct {
	Scraper  ScraperConfig  `yaml:"scraper" mapstructure:"scraper"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Channels ChannelsConfig `yaml:"channels" mapstructure:"channels"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ScraperConfig holds the calendar-scraping settings. Values are carried by
// value into each pipeline instance; nothing here mutates after Load.
type ScraperConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Headless    bool   `yaml:"headless" mapstructure:"headless"`
	BrowserPath string `yaml:"browser_path" mapstructure:"browser_path"`
}

// ServerConfig configures the HTTP layer.
type ServerConfig struct {
	Port    int    `yaml:"port" mapstructure:"port"`
	Workers string `yaml:"workers" mapstructure:"workers"`
}

// ChannelsConfig configures the channel→website store.
type ChannelsConfig struct {
	DBPath   string `yaml:"db_path" mapstructure:"db_path"`
	SeedPath string `yaml:"seed_path" mapstructure:"seed_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CALSCRAPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scraper.base_url", "https://www.tvinsider.com/shows/calendar/")
	v.SetDefault("scraper.timeout_secs", 30)
	v.SetDefault("scraper.headless", true)
	v.SetDefault("scraper.browser_path", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.workers", "auto")
	v.SetDefault("channels.db_path", "channels.db")
	v.SetDefault("channels.seed_path", "channels.yml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Config file is optional; defaults plus env are enough to run.
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
