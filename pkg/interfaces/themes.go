package interfaces

// PreferenceStore persists the visitor's appearance preference between runs.
// Load returns an empty string when nothing has been stored yet.
type PreferenceStore interface {
	Load() (string, error)
	Save(value string) error
}

// SystemAppearance reports the host's colour scheme preference.
type SystemAppearance interface {
	PrefersDark() bool
}
