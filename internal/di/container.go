package di

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-portfolio/internal/cache"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/console"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
	"github.com/goliatone/go-portfolio/internal/logging/zaplogger"
	"github.com/goliatone/go-portfolio/internal/runtimeconfig"
	"github.com/goliatone/go-portfolio/internal/themes"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-portfolio/internal/watch"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const configInvalidCode = "CONFIG_INVALID"

// ErrWatchDisabled is returned by NewWatcher when the watch feature is off.
var ErrWatchDisabled = errors.New("portfolio: watch feature disabled")

// Container wires module dependencies from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	contentFS       fs.FS
	loggerProvider  interfaces.LoggerProvider
	logWriter       io.Writer
	preferenceStore interfaces.PreferenceStore
	system          interfaces.SystemAppearance

	logger     interfaces.Logger
	schemas    *validation.Registry
	cache      *cache.Store[[]content.Item]
	repository *content.Repository
	themeState *themes.State
	palette    *themes.PaletteSelector
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithContentFS reads content from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter redirects the console provider output.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithPreferenceStore overrides where the appearance preference persists.
func WithPreferenceStore(store interfaces.PreferenceStore) Option {
	return func(c *Container) {
		c.preferenceStore = store
	}
}

// WithSystemAppearance overrides the system appearance source.
func WithSystemAppearance(system interfaces.SystemAppearance) Option {
	return func(c *Container) {
		c.system = system
	}
}

// NewContainer validates cfg and wires the content repository, the optional
// cache and the appearance state.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(err, "portfolio configuration invalid")
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, wrapConfigError(err, "portfolio logging configuration invalid")
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "")

	if c.contentFS == nil {
		c.contentFS = os.DirFS(cfg.ContentDir)
	}
	if cfg.Features.Lint {
		c.schemas = validation.NewRegistry(validation.ContentSchemas())
	}
	if cfg.Features.Cache {
		c.cache = cache.New[[]content.Item](cache.Config{
			TTL:      cfg.Cache.TTL,
			Capacity: cfg.Cache.Capacity,
		}, logging.CacheLogger(c.loggerProvider))
	}

	repoOpts := []content.Option{
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		content.WithExtensions(cfg.Extensions...),
		content.WithWordsPerMinute(cfg.ReadingTime.WordsPerMinute),
		content.WithQueryDefaults(cfg.Queries.RelatedPosts, cfg.Queries.RecentPosts, cfg.Queries.RecentPublications),
		content.WithSchemas(c.schemas),
	}
	if c.cache != nil {
		repoOpts = append(repoOpts, content.WithCache(c.cache))
	}
	c.repository = content.NewRepository(c.contentFS, repoOpts...)

	c.configureThemes()

	c.logger.Debug("portfolio.configured",
		"content_dir", cfg.ContentDir,
		"cache", cfg.Features.Cache,
		"lint", cfg.Features.Lint,
		"themes", cfg.Features.Themes,
	)
	return c, nil
}

func wrapConfigError(err error, msg string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).WithTextCode(configInvalidCode)
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	logCfg := c.Config.Logging
	switch runtimeconfig.NormalizeProvider(logCfg.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	case "zap":
		provider, err := zaplogger.NewProvider(zaplogger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(logCfg.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   c.logWriter,
			MinLevel: &level,
			Color:    logCfg.Color,
		})
	}
	return nil
}

func (c *Container) configureThemes() {
	cfg := c.Config
	themesLogger := logging.ThemesLogger(c.loggerProvider)

	store := c.preferenceStore
	if store == nil && cfg.Features.Themes {
		path, err := themes.DefaultPreferencesPath()
		if err != nil {
			themesLogger.Warn("themes.preference.store_unavailable", "error", err)
		} else {
			store = themes.NewFileStore(path, cfg.Themes.StorageKey)
		}
	}
	if store == nil {
		store = themes.NewMemoryStore()
	}

	system := c.system
	if system == nil {
		system = themes.TerminalSystem{}
	}

	c.themeState = themes.NewState(store, system, themes.WithLogger(themesLogger))
	c.palette = themes.NewPaletteSelector(themes.PaletteConfig{
		BasePath:  strings.TrimSpace(cfg.Themes.BasePath),
		Name:      strings.TrimSpace(cfg.Themes.Name),
		CSSPrefix: "portfolio",
	})
}

// Content returns the content repository.
func (c *Container) Content() *content.Repository { return c.repository }

// Themes returns the appearance preference state. Callers run Init once.
func (c *Container) Themes() *themes.State { return c.themeState }

// Palette returns the theme palette selector.
func (c *Container) Palette() *themes.PaletteSelector { return c.palette }

// Cache returns the collection cache, or nil when the cache feature is off.
func (c *Container) Cache() *cache.Store[[]content.Item] { return c.cache }

// Schemas returns the front matter schema registry, or nil when lint is off.
func (c *Container) Schemas() *validation.Registry { return c.schemas }

// LoggerProvider returns the configured provider; nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Logger returns the root module logger.
func (c *Container) Logger() interfaces.Logger { return c.logger }

// NewWatcher returns a watcher that invalidates the cache when content under
// Config.ContentDir changes.
func (c *Container) NewWatcher(opts ...watch.Option) (*watch.Watcher, error) {
	if !c.Config.Features.Watch {
		return nil, ErrWatchDisabled
	}
	opts = append([]watch.Option{watch.WithLogger(logging.WatchLogger(c.loggerProvider))}, opts...)
	var invalidator interfaces.CacheInvalidator
	if c.cache != nil {
		invalidator = c.cache
	}
	return watch.New(c.Config.ContentDir, invalidator, opts...), nil
}
