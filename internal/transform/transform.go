// Package transform holds the small cell-level utility operations: width
// normalization, regex replace-all and blank-row removal.
package transform

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Narrow converts full-width characters to their half-width forms in every
// cell (ＡＢＣ１２３ -> ABC123, full-width katakana included).
func Narrow(rows [][]string) [][]string {
	return mapCells(rows, width.Narrow.String)
}

// ReplaceAll applies a regex substitution to every cell. The replacement
// string may use $1-style group references.
func ReplaceAll(rows [][]string, pattern, repl string) ([][]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return mapCells(rows, func(s string) string {
		return re.ReplaceAllString(s, repl)
	}), nil
}

// RemoveBlankRows drops rows whose cells are all empty after trimming.
func RemoveBlankRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}

func mapCells(rows [][]string, fn func(string) string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		nr := make([]string, len(row))
		for j, c := range row {
			nr[j] = fn(c)
		}
		out[i] = nr
	}
	return out
}
