package themes

import (
	"errors"
	"strings"
)

// Preference is the appearance the user asked for.
type Preference string

// Resolved is the appearance actually applied.
type Resolved string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"

	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// ErrPreferenceInvalid is returned for values other than light, dark and
// system.
var ErrPreferenceInvalid = errors.New("themes: preference must be light, dark or system")

// ParsePreference parses a stored or user supplied preference.
func ParsePreference(value string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(value))); p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return p, nil
	}
	return "", ErrPreferenceInvalid
}

// Next returns the preference that follows p in the toggle cycle
// light, dark, system.
func (p Preference) Next() Preference {
	switch p {
	case PreferenceLight:
		return PreferenceDark
	case PreferenceDark:
		return PreferenceSystem
	default:
		return PreferenceLight
	}
}

// Resolve maps p to an applied appearance. System defers to systemDark.
func (p Preference) Resolve(systemDark bool) Resolved {
	switch p {
	case PreferenceLight:
		return ResolvedLight
	case PreferenceDark:
		return ResolvedDark
	}
	if systemDark {
		return ResolvedDark
	}
	return ResolvedLight
}

func (p Preference) String() string { return string(p) }

func (r Resolved) String() string { return string(r) }
