package model

// RawFile is one selected input file. Immutable for the duration of an
// import call.
type RawFile struct {
	Name  string
	Bytes []byte
}

// Cursor tracks the next placement position of one destination sheet within
// a batch. Row is the last row written; Cleared flips to true once the
// destination region has been wiped and never flips back.
type Cursor struct {
	Row     int
	Cleared bool
}

// Plan describes where one file's rows land on its destination sheet.
// StartRow is the marker row, EndRow the last row actually written
// (inclusive). EndRow never exceeds the sheet capacity; overflow rows are
// dropped and reported via Truncated.
type Plan struct {
	StartRow  int
	EndRow    int
	Truncated bool
}

// CellKind enumerates the closed set of grid cell value types.
type CellKind int

const (
	KindNull CellKind = iota
	KindString
	KindNumber
	KindBool
)

// CellValue is a tagged variant for grid cell values. Only the field matching
// Kind is meaningful.
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

func NullCell() CellValue            { return CellValue{Kind: KindNull} }
func StringCell(s string) CellValue  { return CellValue{Kind: KindString, Str: s} }
func NumberCell(f float64) CellValue { return CellValue{Kind: KindNumber, Num: f} }
func BoolCell(b bool) CellValue      { return CellValue{Kind: KindBool, Bool: b} }

// Value unwraps the variant for APIs taking any.
func (c CellValue) Value() any {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		return c.Num
	case KindBool:
		return c.Bool
	default:
		return nil
	}
}
