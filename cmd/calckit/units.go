// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/calckit/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List unit categories or the units of one category",
	Long: `Units lists the converter categories with their base units. Given a
category, it lists every unit key, symbol, and factor relative to the base.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	format := outputFormat(cmd)

	if len(args) == 0 {
		tables := units.Tables()
		if ok, err := writeStructured(w, format, tables); ok {
			return err
		}
		fmt.Fprintf(w, "%-12s  %-20s  %s\n", "Category", "Base", "Units")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, t := range tables {
			fmt.Fprintf(w, "%-12s  %-20s  %d\n", t.Category, t.Base, len(t.Units))
		}
		return nil
	}

	t, err := units.Lookup(units.Category(args[0]))
	if err != nil {
		return err
	}
	if ok, err := writeStructured(w, format, t); ok {
		return err
	}
	fmt.Fprintf(w, "%-22s  %-8s  %-24s  %s\n", "Key", "Symbol", "Name", "Factor")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, u := range t.Units {
		factor := units.Format(u.Factor, 12)
		switch {
		case u.Inverse:
			factor = factor + " / v"
		case u.Offset != 0:
			factor = fmt.Sprintf("%s + %s", factor, units.Format(u.Offset, 6))
		}
		fmt.Fprintf(w, "%-22s  %-8s  %-24s  %s\n", u.Key, u.Symbol, u.Name, factor)
	}
	fmt.Fprintf(w, "\nBase unit: %s\n", t.Base)
	return nil
}

var unitsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every unit table to YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runUnitsExport,
}

func runUnitsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("file")

	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch format {
	case "yaml", "":
		err = units.ExportYAML(w)
	case "json":
		err = units.ExportJSON(w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", path)
	}
	return nil
}

func init() {
	addOutputFlag(unitsCmd)
	unitsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	unitsExportCmd.Flags().String("file", "", "write to FILE instead of stdout")

	unitsCmd.AddCommand(unitsExportCmd)
	rootCmd.AddCommand(unitsCmd)
}
