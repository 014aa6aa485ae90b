package portfolio

import (
	"github.com/goliatone/go-portfolio/internal/cache"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/di"
	"github.com/goliatone/go-portfolio/internal/themes"
	"github.com/goliatone/go-portfolio/internal/watch"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ContentRepository exports the content repository for consumers of the portfolio package.
type ContentRepository = *content.Repository

// ThemeState exports the appearance preference state.
type ThemeState = *themes.State

// PaletteSelector exports the theme palette selector.
type PaletteSelector = *themes.PaletteSelector

// CollectionCache exports the collection cache used when the cache feature is on.
type CollectionCache = *cache.Store[[]content.Item]

// Watcher exports the content watcher.
type Watcher = *watch.Watcher

// Option configures module wiring.
type Option = di.Option

var (
	WithContentFS        = di.WithContentFS
	WithLoggerProvider   = di.WithLoggerProvider
	WithLogWriter        = di.WithLogWriter
	WithPreferenceStore  = di.WithPreferenceStore
	WithSystemAppearance = di.WithSystemAppearance
)

// ErrWatchDisabled is returned by NewWatcher when the watch feature is off.
var ErrWatchDisabled = di.ErrWatchDisabled

// Module represents the top level portfolio runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a portfolio module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the configuration the module was built from.
func (m *Module) Config() Config {
	return m.container.Config
}

// Content returns the content repository.
func (m *Module) Content() ContentRepository {
	return m.container.Content()
}

// Themes returns the appearance preference state.
func (m *Module) Themes() ThemeState {
	return m.container.Themes()
}

// Palette returns the theme palette selector.
func (m *Module) Palette() PaletteSelector {
	return m.container.Palette()
}

// Cache returns the collection cache, or nil when the cache feature is disabled.
func (m *Module) Cache() CollectionCache {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Cache()
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.container.Logger()
}

// NewWatcher returns a watcher invalidating cached content on change.
func (m *Module) NewWatcher(opts ...watch.Option) (Watcher, error) {
	return m.container.NewWatcher(opts...)
}
