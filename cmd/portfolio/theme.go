package main

import (
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-portfolio/cmd/portfolio/internal/bootstrap"
	"github.com/goliatone/go-portfolio/themes"
)

func (a *app) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the appearance preference",
		Long: `The appearance preference is light, dark or system. It is persisted to the
user config directory when features.themes is enabled; otherwise changes only
last for the current invocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.showTheme(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the stored preference and the applied appearance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.showTheme(cmd)
			},
		},
		&cobra.Command{
			Use:       "set <light|dark|system>",
			Short:     "Store a new preference",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"light", "dark", "system"},
			RunE: func(cmd *cobra.Command, args []string) error {
				preference, err := themes.ParsePreference(args[0])
				if err != nil {
					return err
				}
				module, err := a.load(cmd)
				if err != nil {
					return err
				}
				state := module.Module.Themes()
				state.Init()
				snap, err := state.SetPreference(preference)
				if err != nil {
					return err
				}
				a.logger("theme").Info("cli.theme.set", "preference", snap.Preference)
				return a.writeTheme(cmd.OutOrStdout(), module, snap)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Cycle the preference light, dark, system",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				module, err := a.load(cmd)
				if err != nil {
					return err
				}
				state := module.Module.Themes()
				state.Init()
				snap := state.Toggle()
				a.logger("theme").Info("cli.theme.toggled", "preference", snap.Preference)
				return a.writeTheme(cmd.OutOrStdout(), module, snap)
			},
		},
	)
	return cmd
}

func (a *app) showTheme(cmd *cobra.Command) error {
	module, err := a.load(cmd)
	if err != nil {
		return err
	}
	return a.writeTheme(cmd.OutOrStdout(), module, module.Module.Themes().Init())
}

func (a *app) writeTheme(out io.Writer, module *bootstrap.Module, snap themes.Snapshot) error {
	printf(out, "preference: %s\n", snap.Preference)
	printf(out, "applied:    %s\n", snap.Resolved)
	if !module.Module.Config().Features.Themes {
		printf(out, "%s\n", muted("not persisted: features.themes is disabled"))
	}

	selector := module.Module.Palette()
	if selector == nil || !selector.Enabled() {
		return nil
	}
	palette, err := selector.Select(snap.Resolved)
	if err != nil {
		return err
	}
	heading(out, palette.Theme+"/"+palette.Variant)
	for _, name := range slices.Sorted(maps.Keys(palette.CSSVars)) {
		printf(out, "  %s: %s\n", name, palette.CSSVars[name])
	}
	return nil
}
