package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// EnvPrefix prefixes every environment variable read by the CLI, for example
// PORTFOLIO_CONTENT_DIR or PORTFOLIO_LOGGING_LEVEL.
const EnvPrefix = "PORTFOLIO"

// DefaultConfigName is the file looked up in the working directory when no
// explicit config file is given.
const DefaultConfigName = "portfolio"

// Options captures the command line overrides applied on top of the config
// file and environment.
type Options struct {
	ConfigFile string
	ContentDir string
	LogLevel   string
	// Watch turns on the cache and watch features.
	Watch bool
	// Quiet disables logging entirely.
	Quiet bool

	ModuleOptions []portfolio.Option
}

// Module bundles the configured portfolio module with the CLI logger.
type Module struct {
	Module  *portfolio.Module
	Content portfolio.ContentRepository
	Logger  interfaces.Logger
}

// LoadConfig resolves the runtime configuration from defaults, the optional
// config file, PORTFOLIO_ environment variables and finally opts.
func LoadConfig(opts Options) (portfolio.Config, error) {
	v := viper.New()
	setDefaults(v, portfolio.DefaultConfig())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return portfolio.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg portfolio.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return portfolio.Config{}, fmt.Errorf("decode config: %w", err)
	}

	applyOverrides(&cfg, opts)
	return cfg, nil
}

// BuildModule loads the configuration and constructs the portfolio module.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	module, err := portfolio.New(cfg, opts.ModuleOptions...)
	if err != nil {
		return nil, err
	}

	return &Module{
		Module:  module,
		Content: module.Content(),
		Logger:  logging.CLILogger(module.Container().LoggerProvider()),
	}, nil
}

func applyOverrides(cfg *portfolio.Config, opts Options) {
	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.ContentDir = dir
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if opts.Watch {
		cfg.Features.Cache = true
		cfg.Features.Watch = true
	}
	if opts.Quiet {
		cfg.Features.Logger = false
	}
}

// setDefaults registers every leaf key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, cfg portfolio.Config) {
	v.SetDefault("content_dir", cfg.ContentDir)
	v.SetDefault("extensions", cfg.Extensions)
	v.SetDefault("reading_time.words_per_minute", cfg.ReadingTime.WordsPerMinute)
	v.SetDefault("queries.related_posts", cfg.Queries.RelatedPosts)
	v.SetDefault("queries.recent_posts", cfg.Queries.RecentPosts)
	v.SetDefault("queries.recent_publications", cfg.Queries.RecentPublications)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("cache.capacity", cfg.Cache.Capacity)
	v.SetDefault("themes.base_path", cfg.Themes.BasePath)
	v.SetDefault("themes.name", cfg.Themes.Name)
	v.SetDefault("themes.storage_key", cfg.Themes.StorageKey)
	v.SetDefault("features.cache", cfg.Features.Cache)
	v.SetDefault("features.watch", cfg.Features.Watch)
	v.SetDefault("features.themes", cfg.Features.Themes)
	v.SetDefault("features.lint", cfg.Features.Lint)
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
	v.SetDefault("logging.color", cfg.Logging.Color)
}
