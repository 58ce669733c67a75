// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/calckit/internal/calc"
)

// resetFlags restores every flag to its default; cobra keeps flag values
// between Execute calls on the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { verbose = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "calckit dev\n", out)
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "", "convert", "temperature", "100", "celsius", "fahrenheit", "-o", "json")
	require.NoError(t, err)

	var res conversion
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 212, res.Result, 1e-9)
	assert.Equal(t, "212", res.Formatted)

	out, err = run(t, "", "convert", "length", "5,280", "foot", "mile")
	require.NoError(t, err)
	assert.Contains(t, out, "= 1 ")

	_, err = run(t, "", "convert", "length", "1", "meter", "furlong")
	assert.Error(t, err)
}

func TestConvertZeroPrecision(t *testing.T) {
	out, err := run(t, "", "convert", "length", "1.4", "meter", "meter", "--precision", "0", "-o", "json")
	require.NoError(t, err)

	var res conversion
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "1", res.Formatted)

	out, err = run(t, "", "convert", "length", "1.4", "meter", "meter", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "1.4", res.Formatted)
}

func TestLoadConfigKeepsZeroPrecision(t *testing.T) {
	resetFlags(rootCmd)
	require.NoError(t, rootCmd.PersistentFlags().Set("precision", "0"))
	t.Cleanup(func() { resetFlags(rootCmd) })

	cfg, err := loadConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Format.Precision)
}

func TestConvertBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n\n2.5\n"), 0o644))

	out, err := run(t, "", "convert", "mass", "--batch", path, "kilogram", "gram")
	require.NoError(t, err)
	assert.Contains(t, out, "converted: 1 kilogram -> 1000 gram")
	assert.Contains(t, out, "converted: 2.5 kilogram -> 2500 gram")
	assert.Contains(t, out, "2 converted, 1 skipped, 0 failed")

	out, err = run(t, "oops\n", "convert", "mass", "--batch", "-", "kilogram", "gram")
	assert.Error(t, err)
	assert.Contains(t, out, "failed:")
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "", "units")
	require.NoError(t, err)
	assert.Contains(t, out, "temperature")
	assert.Contains(t, out, "kelvin")

	out, err = run(t, "", "units", "export", "--format", "json")
	require.NoError(t, err)
	var tables []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Len(t, tables, 13)

	_, err = run(t, "", "units", "export", "--format", "toml")
	assert.Error(t, err)
}

func TestCalcCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"percent of", []string{"calc", "percent", "of", "10", "250"}, "25\n"},
		{"percent change", []string{"calc", "percent", "change", "200", "250"}, "25%\n"},
		{"trig", []string{"calc", "trig", "sin", "30"}, "0.5\n"},
		{"date add", []string{"calc", "date-add", "2024-01-31", "--months", "1"}, "2024-02-29 (Thursday)\n"},
		{"age", []string{"calc", "age", "2000-02-29", "--on", "2026-10-14"}, "26 years, 7 months, 15 days"},
		{"bmi", []string{"calc", "bmi", "--height", "180", "--weight", "81"}, "BMI: 25.0 (Overweight)"},
		{"loan", []string{"calc", "loan", "12,000", "0", "12"}, "Monthly payment: 1,000.00"},
		{"calories", []string{"calc", "calories", "--sex", "male", "--weight", "80", "--height", "180",
			"--age", "30", "--activity", "moderate"}, "TDEE: 2,759 kcal/day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	_, err := run(t, "", "calc", "percent", "what", "1", "0")
	assert.Error(t, err)
	_, err = run(t, "", "calc", "age", "14/10/2026")
	assert.Error(t, err)
	_, err = run(t, "", "calc", "trig", "tan", "90")
	assert.Error(t, err)
	_, err = run(t, "", "calc", "loan", "1000", "5", "1099511627776")
	assert.ErrorIs(t, err, calc.ErrOutOfRange)
}

func TestSubnetCommand(t *testing.T) {
	out, err := run(t, "", "subnet", "192.168.1.10/24", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "broadcast: 192.168.1.255")
	assert.Contains(t, out, "usable_hosts: 254")
}

func TestTextCommands(t *testing.T) {
	out, err := run(t, "", "text", "case", "title", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hello World\n", out)

	out, err = run(t, "abc\n", "text", "reverse")
	require.NoError(t, err)
	assert.Equal(t, "cba\n", out)

	out, err = run(t, "One two. Three four.", "text", "stats", "-o", "json")
	require.NoError(t, err)
	var stats map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 4, stats["words"])
	assert.Equal(t, 2, stats["sentences"])
}

func TestTextQRCommand(t *testing.T) {
	out, err := run(t, "", "text", "qr", "calckit")
	require.NoError(t, err)
	assert.Contains(t, out, "█")

	path := filepath.Join(t.TempDir(), "code.png")
	_, err = run(t, "", "text", "qr", "calckit", "--png", path, "--size", "128")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	_, err = run(t, "", "text", "qr", "calckit", "--level", "X")
	assert.Error(t, err)
}

func TestThemeCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.db")

	out, err := run(t, "", "theme", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = run(t, "", "theme", "toggle", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = run(t, "", "theme", "get", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = run(t, "", "theme", "set", "sepia", "--db", db)
	assert.Error(t, err)
}
