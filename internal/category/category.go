// Package category tags table rows with labels from a keyword dictionary.
package category

import "strings"

// Entry maps a keyword substring to a category label.
type Entry struct {
	Keyword  string
	Category string
}

// Dictionary is an ordered keyword table; order decides matches.
type Dictionary []Entry

// FromRows builds a dictionary from a two-column table (keyword, category).
// Rows with a blank keyword are skipped.
func FromRows(rows [][]string) Dictionary {
	var d Dictionary
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		kw := strings.TrimSpace(row[0])
		if kw == "" {
			continue
		}
		d = append(d, Entry{Keyword: kw, Category: strings.TrimSpace(row[1])})
	}
	return d
}

// Match returns the category of the first entry whose keyword occurs in text.
func (d Dictionary) Match(text string) (string, bool) {
	for _, e := range d {
		if strings.Contains(text, e.Keyword) {
			return e.Category, true
		}
	}
	return "", false
}

// Tag appends a category column to every row, matching against the cell at
// col (0-based). Rows too short for col get an empty category.
func (d Dictionary) Tag(rows [][]string, col int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cat := ""
		if col >= 0 && col < len(row) {
			cat, _ = d.Match(row[col])
		}
		tagged := make([]string, len(row)+1)
		copy(tagged, row)
		tagged[len(row)] = cat
		out[i] = tagged
	}
	return out
}
