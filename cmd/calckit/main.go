// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the calckit CLI: unit conversion,
// everyday calculators, subnet and text tools, and a local JSON API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/calckit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd is the base command for the calckit CLI.
var rootCmd = &cobra.Command{
	Use:   "calckit",
	Short: "Unit converters and everyday calculators",
	Long: `calckit converts between units in thirteen categories and runs the
everyday calculators: age and date arithmetic, BMI, BMR and calories,
loans, percentages, trigonometry, IPv4 subnets, and text tools.

Every tool is a subcommand. "calckit serve" exposes the same tools as a
local JSON API, and "calckit theme" manages the persisted colour theme.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose || viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./calckit.yaml or ~/.config/calckit/calckit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("precision", types.DefaultPrecision, "decimal places kept in converted values")

	_ = viper.BindPFlag("format.precision", rootCmd.PersistentFlags().Lookup("precision"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("calckit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if dir, err := configDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("CALCKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "calckit"), nil
}

// loadConfig decodes the merged viper settings and fills in defaults. A
// --db flag on cmd overrides theme.db_path.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if f := cmd.Flags().Lookup("db"); f != nil && f.Value.String() != "" {
		cfg.Theme.DBPath = f.Value.String()
	}
	dbPath := "prefs.db"
	if dir, err := configDir(); err == nil {
		dbPath = filepath.Join(dir, "prefs.db")
	}
	cfg = cfg.WithDefaults(dbPath)
	cfg.Format.Precision = precision()
	return cfg, nil
}

// precision returns format.precision. An explicit 0 is kept; an unset or
// negative value falls back to the default.
func precision() int {
	if viper.IsSet("format.precision") {
		if p := viper.GetInt("format.precision"); p >= 0 {
			return p
		}
	}
	return types.DefaultPrecision
}

// writeStructured encodes v as JSON or YAML; it reports false for any
// other format so the caller can fall back to its text layout.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	case "", "text":
		return false, nil
	default:
		return true, fmt.Errorf("unsupported output format %q: use text, json, or yaml", format)
	}
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")
}

func outputFormat(cmd *cobra.Command) string {
	f, _ := cmd.Flags().GetString("output")
	return f
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
