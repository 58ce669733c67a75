// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/calckit/internal/qr"
	"github.com/pdiddy/calckit/internal/textutil"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text statistics and case transforms",
	Long: `Text operates on its arguments joined by spaces, or on stdin when no
arguments are given.`,
}

// readText joins args, or reads all of stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

var textStatsCmd = &cobra.Command{
	Use:   "stats [text...]",
	Short: "Count characters, words, sentences, paragraphs, and lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		s := textutil.Analyze(text)
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), s); ok {
			return err
		}
		printer.Fprintf(w, "Characters:            %d\n", s.Characters)
		printer.Fprintf(w, "Characters (no space): %d\n", s.CharactersNoSpace)
		printer.Fprintf(w, "Words:                 %d\n", s.Words)
		printer.Fprintf(w, "Sentences:             %d\n", s.Sentences)
		printer.Fprintf(w, "Paragraphs:            %d\n", s.Paragraphs)
		printer.Fprintf(w, "Lines:                 %d\n", s.Lines)
		printer.Fprintf(w, "Reading time:          %d min\n", s.ReadingMinutes)
		return nil
	},
}

func modeNames() string {
	names := make([]string, len(textutil.Modes))
	for i, m := range textutil.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

var textCaseCmd = &cobra.Command{
	Use:   "case <mode> [text...]",
	Short: "Change the case of text",
	Long:  "Case rewrites text in one of: " + modeNames() + ".",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args[1:])
		if err != nil {
			return err
		}
		out, err := textutil.Transform(text, textutil.Mode(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var textReverseCmd = &cobra.Command{
	Use:   "reverse [text...]",
	Short: "Reverse text character by character",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.Reverse(strings.TrimRight(text, "\n")))
		return nil
	},
}

var textQRCmd = &cobra.Command{
	Use:   "qr [text...]",
	Short: "Encode text as a QR code",
	Long: `QR draws the text as a QR code in the terminal, or writes a PNG image
with --png FILE. --level selects error correction: L, M, Q, or H.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		text = strings.TrimRight(text, "\n")
		level, _ := cmd.Flags().GetString("level")

		if path, _ := cmd.Flags().GetString("png"); path != "" {
			size, _ := cmd.Flags().GetInt("size")
			data, err := qr.PNG(text, qr.Level(level), size)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		}

		inverse, _ := cmd.Flags().GetBool("inverse")
		out, err := qr.Terminal(text, qr.Level(level), inverse)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	addOutputFlag(textStatsCmd)
	textQRCmd.Flags().String("level", string(qr.Medium), "error correction level: L, M, Q, or H")
	textQRCmd.Flags().String("png", "", "write a PNG image to FILE")
	textQRCmd.Flags().Int("size", qr.DefaultSize, "PNG width and height in pixels")
	textQRCmd.Flags().Bool("inverse", false, "swap dark and light modules")
	textCmd.AddCommand(textQRCmd)

	textCmd.AddCommand(textStatsCmd)
	textCmd.AddCommand(textCaseCmd)
	textCmd.AddCommand(textReverseCmd)
	rootCmd.AddCommand(textCmd)
}
