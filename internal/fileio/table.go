package fileio

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// SkipMode controls how blank lines are handled during parsing.
type SkipMode int

const (
	// SkipNone keeps every line; a literally empty line becomes a
	// single-empty-field row, so row positions survive round trips.
	SkipNone SkipMode = iota
	// SkipGreedy drops runs of blank-ish lines (empty, or nothing but
	// separators and whitespace — the usual spreadsheet-paste artifacts).
	SkipGreedy
)

type ParseOptions struct {
	HeaderPresent bool
	SkipEmpty     SkipMode
}

// Table is the parsed form of one CSV document. Rows are ragged; column
// normalization is the caller's business. Warnings carry per-line parse
// problems; the rows that did parse are always returned.
type Table struct {
	Rows     [][]string
	Header   bool
	Warnings []string
}

// DataRows returns the rows after the header, or all rows when no header.
func (t Table) DataRows() [][]string {
	if t.Header && len(t.Rows) > 0 {
		return t.Rows[1:]
	}
	return t.Rows
}

// ParseTable parses decoded text into rows. Records are split up front on
// newlines outside quoted fields because csv.Reader unconditionally drops
// empty lines and SkipNone must keep them. Each record then goes through
// encoding/csv, so quoting rules (doubled quotes, embedded separators and
// newlines) match the standard dialect. Malformed records are collected as
// warnings and skipped.
func ParseTable(text string, opt ParseOptions) Table {
	t := Table{Header: opt.HeaderPresent}
	for i, rec := range splitRecords(text) {
		if opt.SkipEmpty == SkipGreedy && blankish(rec) {
			continue
		}
		if rec == "" {
			t.Rows = append(t.Rows, []string{""})
			continue
		}
		fields, err := parseRecord(rec)
		if err != nil {
			t.Warnings = append(t.Warnings, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		t.Rows = append(t.Rows, fields)
	}
	return t
}

// splitRecords breaks text into CSV records on newlines outside quotes.
// A trailing newline does not produce a final empty record.
func splitRecords(text string) []string {
	var recs []string
	var sb strings.Builder
	inQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			sb.WriteByte(c)
		case c == '\n' && !inQuotes:
			recs = append(recs, strings.TrimSuffix(sb.String(), "\r"))
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	if sb.Len() > 0 {
		recs = append(recs, strings.TrimSuffix(sb.String(), "\r"))
	}
	return recs
}

func blankish(rec string) bool {
	return strings.Trim(rec, " \t,\"") == ""
}

func parseRecord(rec string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(rec))
	r.FieldsPerRecord = -1
	return r.Read()
}
