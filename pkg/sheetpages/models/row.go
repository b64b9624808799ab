// Package models defines data structures for the sheet-to-pages pipeline.
package models

// RawRow is one decoded spreadsheet row.
// Cells are positional (0-based); each is nil, string, int64, float64 or bool.
type RawRow []interface{}

// Cell returns the value at index i, or nil when the row is too short.
func (r RawRow) Cell(i int) interface{} {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}
