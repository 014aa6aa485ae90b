package themes

import internal "github.com/goliatone/go-portfolio/internal/themes"

type (
	Preference      = internal.Preference
	Resolved        = internal.Resolved
	Snapshot        = internal.Snapshot
	State           = internal.State
	Palette         = internal.Palette
	PaletteConfig   = internal.PaletteConfig
	PaletteSelector = internal.PaletteSelector
	MemoryStore     = internal.MemoryStore
	FileStore       = internal.FileStore
	TerminalSystem  = internal.TerminalSystem
	StaticSystem    = internal.StaticSystem
)

const (
	PreferenceLight  = internal.PreferenceLight
	PreferenceDark   = internal.PreferenceDark
	PreferenceSystem = internal.PreferenceSystem
	ResolvedLight    = internal.ResolvedLight
	ResolvedDark     = internal.ResolvedDark

	DefaultStorageKey = internal.DefaultStorageKey
)

var ErrPreferenceInvalid = internal.ErrPreferenceInvalid

func ParsePreference(value string) (Preference, error) { return internal.ParsePreference(value) }

func NewMemoryStore() *MemoryStore { return internal.NewMemoryStore() }

func NewFileStore(path, key string) *FileStore { return internal.NewFileStore(path, key) }

func DefaultPreferencesPath() (string, error) { return internal.DefaultPreferencesPath() }
