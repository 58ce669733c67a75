// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/calckit/internal/prefs"
	"github.com/pdiddy/calckit/pkg/types"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the persisted colour theme",
	Long: `Theme manages the persisted light/dark flag. The flag is stored under both
the color-theme and theme keys in a local SQLite file (theme.db_path).`,
	Args: cobra.NoArgs,
	RunE: runThemeGet,
}

func openPrefs(cmd *cobra.Command) (*prefs.Store, types.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debug("opening prefs store", zap.String("path", cfg.Theme.DBPath))
	store, err := prefs.Open(cfg.Theme.DBPath)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

func runThemeGet(cmd *cobra.Command, args []string) error {
	store, cfg, err := openPrefs(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := store.Theme(context.Background(), cfg.Theme.Default)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Store a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(types.ThemeLight), string(types.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openPrefs(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		t := types.Theme(args[0])
		if err := store.SetTheme(context.Background(), t); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openPrefs(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		t, err := store.Toggle(context.Background(), cfg.Theme.Default)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	themeCmd.PersistentFlags().String("db", "", "prefs database path (overrides theme.db_path)")

	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
