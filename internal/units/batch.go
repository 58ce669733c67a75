// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the number of lines processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any line failed to convert.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts one value per line of r from one unit to another,
// printing per-line status to w and returning a summary. Blank lines and
// lines starting with '#' are skipped. The only error returned is a read
// error from r; bad values are counted as failures.
func ConvertBatch(t Table, r io.Reader, from, to string, precision int, w io.Writer) (BatchResult, error) {
	if _, err := t.Unit(from); err != nil {
		return BatchResult{}, err
	}
	if _, err := t.Unit(to); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			result.Skipped++
			continue
		}

		v, err := Parse(line)
		if err == nil {
			var out float64
			out, err = t.Convert(v, from, to)
			if err == nil {
				fmt.Fprintf(w, "converted: %s %s -> %s %s\n", line, from, Format(out, precision), to)
				result.Converted++
				continue
			}
		}
		fmt.Fprintf(w, "failed:    %s (%v)\n", line, err)
		result.Failed++
	}
	if err := sc.Err(); err != nil {
		return result, fmt.Errorf("reading batch input: %w", err)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}
