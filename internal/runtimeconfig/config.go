package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("portfolio config: content directory is required")
var ErrExtensionsRequired = errors.New("portfolio config: at least one content file extension is required")
var ErrExtensionInvalid = errors.New("portfolio config: content file extension must start with a dot")
var ErrWordsPerMinuteInvalid = errors.New("portfolio config: reading time words per minute must be positive")
var ErrCacheTTLInvalid = errors.New("portfolio config: cache ttl must be positive when the cache is enabled")
var ErrWatchRequiresCache = errors.New("portfolio config: watch feature requires the cache feature")
var ErrThemesFeatureRequired = errors.New("portfolio config: themes feature must be enabled to configure a theme")
var ErrLoggingProviderRequired = errors.New("portfolio config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// Config aggregates the portfolio runtime options. Fields are plain values so
// hosts can fill them from flags, files or environment.
type Config struct {
	// ContentDir is the root holding one directory per content type.
	ContentDir string `mapstructure:"content_dir"`
	// Extensions lists the file extensions treated as content files, in
	// lookup priority order.
	Extensions  []string          `mapstructure:"extensions"`
	ReadingTime ReadingTimeConfig `mapstructure:"reading_time"`
	Queries     QueryConfig       `mapstructure:"queries"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Themes      ThemeConfig       `mapstructure:"themes"`
	Features    Features          `mapstructure:"features"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ReadingTimeConfig tunes the reading time estimate attached to posts.
type ReadingTimeConfig struct {
	WordsPerMinute int `mapstructure:"words_per_minute"`
}

// QueryConfig holds default result sizes for list helpers.
type QueryConfig struct {
	RelatedPosts       int `mapstructure:"related_posts"`
	RecentPosts        int `mapstructure:"recent_posts"`
	RecentPublications int `mapstructure:"recent_publications"`
}

// CacheConfig configures the optional collection cache.
type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

// ThemeConfig configures appearance preference handling.
type ThemeConfig struct {
	// BasePath points at a go-theme manifest directory used for palettes.
	BasePath string `mapstructure:"base_path"`
	Name     string `mapstructure:"name"`
	// StorageKey names the file the preference is persisted to.
	StorageKey string `mapstructure:"storage_key"`
}

// Features toggles optional behaviour.
type Features struct {
	Cache  bool `mapstructure:"cache"`
	Watch  bool `mapstructure:"watch"`
	Themes bool `mapstructure:"themes"`
	Lint   bool `mapstructure:"lint"`
	Logger bool `mapstructure:"logger"`
}

// LoggingConfig captures provider specific logging options.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
	Color     bool     `mapstructure:"color"`
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		ContentDir: "contents",
		Extensions: []string{".mdx", ".md"},
		ReadingTime: ReadingTimeConfig{
			WordsPerMinute: 200,
		},
		Queries: QueryConfig{
			RelatedPosts:       3,
			RecentPosts:        5,
			RecentPublications: 3,
		},
		Cache: CacheConfig{
			TTL:      5 * time.Minute,
			Capacity: 64,
		},
		Themes: ThemeConfig{
			StorageKey: "theme-preference",
		},
		Features: Features{
			Lint:   true,
			Logger: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if len(cfg.Extensions) == 0 {
		return ErrExtensionsRequired
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(strings.TrimSpace(ext), ".") {
			return fmt.Errorf("%w: %q", ErrExtensionInvalid, ext)
		}
	}
	if cfg.ReadingTime.WordsPerMinute <= 0 {
		return ErrWordsPerMinuteInvalid
	}
	if cfg.Features.Cache && cfg.Cache.TTL <= 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Watch && !cfg.Features.Cache {
		return ErrWatchRequiresCache
	}
	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Themes.BasePath) != "" || strings.TrimSpace(cfg.Themes.Name) != "" {
			return ErrThemesFeatureRequired
		}
	}
	if cfg.Features.Logger {
		provider := NormalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(provider, format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger", "zap":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(provider, format string) bool {
	format = strings.ToLower(strings.TrimSpace(format))
	switch provider {
	case "gologger":
		return format == "json" || format == "console" || format == "pretty"
	case "zap":
		return format == "json" || format == "console"
	default:
		// the console provider has a single fixed layout
		return false
	}
}
