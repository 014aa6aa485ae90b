package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

var (
	_ interfaces.SystemAppearance = TerminalSystem{}
	_ interfaces.SystemAppearance = StaticSystem{}
)

// TerminalSystem reports the terminal background as the system appearance.
type TerminalSystem struct{}

func (TerminalSystem) PrefersDark() bool {
	return lipgloss.HasDarkBackground()
}

// StaticSystem reports a fixed system appearance.
type StaticSystem struct {
	Dark bool
}

func (s StaticSystem) PrefersDark() bool { return s.Dark }
