package themes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// Palette holds the design tokens of one theme variant.
type Palette struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// EmptyPalette is returned when no theme is configured.
func EmptyPalette() Palette {
	return Palette{Tokens: map[string]string{}, CSSVars: map[string]string{}}
}

// PaletteConfig points the selector at a theme manifest directory.
type PaletteConfig struct {
	BasePath  string
	Name      string
	CSSPrefix string
	// FS overrides the filesystem the manifest is read from; it defaults to
	// os.DirFS(BasePath).
	FS fs.FS
}

// PaletteSelector picks the go-theme variant matching a resolved appearance.
// The manifest is loaded once on first use.
type PaletteSelector struct {
	cfg      PaletteConfig
	registry *gotheme.MemoryRegistry

	once     sync.Once
	manifest *gotheme.Manifest
	err      error
}

// NewPaletteSelector returns a selector. An empty BasePath and FS disable
// palette selection.
func NewPaletteSelector(cfg PaletteConfig) *PaletteSelector {
	cfg.BasePath = strings.TrimSpace(cfg.BasePath)
	cfg.Name = strings.TrimSpace(cfg.Name)
	return &PaletteSelector{cfg: cfg, registry: gotheme.NewRegistry()}
}

// Enabled reports whether a theme manifest is configured.
func (p *PaletteSelector) Enabled() bool {
	return p != nil && (p.cfg.FS != nil || p.cfg.BasePath != "")
}

// Select returns the palette for resolved. Without a configured theme it
// returns an empty palette.
func (p *PaletteSelector) Select(resolved Resolved) (Palette, error) {
	if !p.Enabled() {
		return EmptyPalette(), nil
	}
	manifest, err := p.load()
	if err != nil {
		return EmptyPalette(), err
	}

	selector := gotheme.Selector{
		Registry:       p.registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: string(ResolvedLight),
	}
	selection, err := selector.Select(manifest.Name, string(resolved))
	if err != nil {
		return EmptyPalette(), fmt.Errorf("select theme %s: %w", manifest.Name, err)
	}
	return Palette{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(p.cfg.CSSPrefix),
	}, nil
}

func (p *PaletteSelector) load() (*gotheme.Manifest, error) {
	p.once.Do(func() {
		fsys := p.cfg.FS
		if fsys == nil {
			fsys = os.DirFS(filepath.Clean(p.cfg.BasePath))
		}
		manifest, err := gotheme.LoadDir(fsys, ".")
		if err != nil {
			p.err = fmt.Errorf("load theme manifest from %s: %w", p.cfg.BasePath, err)
			return
		}

		normalized := *manifest
		if p.cfg.Name != "" {
			normalized.Name = p.cfg.Name
		}
		if strings.TrimSpace(normalized.Name) == "" {
			p.err = fmt.Errorf("theme name required for manifest registration")
			return
		}
		if err := p.registry.Register(&normalized); err != nil {
			p.err = fmt.Errorf("register theme manifest: %w", err)
			return
		}
		p.manifest = &normalized
	})
	return p.manifest, p.err
}
