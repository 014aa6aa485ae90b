package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-portfolio/themes"
)

const wordWrap = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func heading(w io.Writer, text string) {
	printf(w, "%s\n", headingStyle.Render(text))
}

func muted(text string) string {
	return mutedStyle.Render(text)
}

// formatDate prints the calendar date followed by a relative hint, or a
// placeholder when the date is unknown.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "undated"
	}
	return fmt.Sprintf("%s (%s)", t.Format(time.DateOnly), humanize.Time(t))
}

func yearLabel(year int) string {
	if year == 0 {
		return "Undated"
	}
	return fmt.Sprintf("%d", year)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), word)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), word)
}

// renderMarkdown renders body for the terminal using the glamour style that
// matches the resolved appearance.
func renderMarkdown(body string, resolved themes.Resolved) (string, error) {
	style := "light"
	if resolved == themes.ResolvedDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func writeBody(w io.Writer, body string, render bool, resolved themes.Resolved) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	if !render {
		printf(w, "\n%s\n", body)
		return nil
	}
	out, err := renderMarkdown(body, resolved)
	if err != nil {
		return err
	}
	printf(w, "%s", out)
	return nil
}
