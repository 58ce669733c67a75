// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/calckit/internal/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <category> <value> <from> <to>",
	Short: "Convert a value between two units",
	Long: `Convert converts a value from one unit to another within a category,
going through the category's base unit.

  calckit convert temperature 100 celsius fahrenheit
  calckit convert length 5,280 foot mile

With --batch, the value argument is dropped and one value per line is read
from FILE ("-" for stdin):

  calckit convert length --batch heights.txt foot meter

Use "calckit units" to list categories and unit keys.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if batch, _ := cmd.Flags().GetString("batch"); batch != "" {
			return cobra.ExactArgs(3)(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: runConvert,
}

type conversion struct {
	Category  units.Category `json:"category" yaml:"category"`
	Value     float64        `json:"value" yaml:"value"`
	From      string         `json:"from" yaml:"from"`
	To        string         `json:"to" yaml:"to"`
	Result    float64        `json:"result" yaml:"result"`
	Formatted string         `json:"formatted" yaml:"formatted"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if batch, _ := cmd.Flags().GetString("batch"); batch != "" {
		return runConvertBatch(cmd, batch, units.Category(args[0]), args[1], args[2])
	}

	c, from, to := units.Category(args[0]), args[2], args[3]
	v, err := units.Parse(args[1])
	if err != nil {
		return err
	}
	out, err := units.Convert(c, v, from, to)
	if err != nil {
		return err
	}
	logger.Debug("converted", zap.String("category", string(c)), zap.Float64("value", v),
		zap.String("from", from), zap.String("to", to), zap.Float64("result", out))

	res := conversion{
		Category:  c,
		Value:     v,
		From:      from,
		To:        to,
		Result:    out,
		Formatted: units.Format(out, precision()),
	}
	w := cmd.OutOrStdout()
	if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
		return err
	}

	t, _ := units.Lookup(c)
	fromUnit, _ := t.Unit(from)
	toUnit, _ := t.Unit(to)
	fmt.Fprintf(w, "%s %s = %s %s\n", units.Format(v, precision()), fromUnit.Symbol, res.Formatted, toUnit.Symbol)
	return nil
}

func runConvertBatch(cmd *cobra.Command, path string, c units.Category, from, to string) error {
	t, err := units.Lookup(c)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	result, err := units.ConvertBatch(t, r, from, to, precision(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Debug("batch finished", zap.Int("converted", result.Converted),
		zap.Int("skipped", result.Skipped), zap.Int("failed", result.Failed))
	if result.HasFailures() {
		return fmt.Errorf("%d value(s) failed to convert", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().String("batch", "", "read one value per line from FILE (- for stdin)")
	addOutputFlag(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
