package models

// Record is the trimmed (column B, column C) pair taken from one data row.
type Record struct {
	// ColumnB is the trimmed text of column B (index 1).
	ColumnB string `json:"column_b"`
	// ColumnC is the trimmed text of column C (index 2).
	ColumnC string `json:"column_c"`
}

// IsEmpty reports whether both columns are empty.
func (r Record) IsEmpty() bool {
	return r.ColumnB == "" && r.ColumnC == ""
}

// RankedRecord is a Record with its final 1-based sequence number.
type RankedRecord struct {
	Record
	// Seq is the position in the sorted sequence (1-based, contiguous).
	Seq int `json:"seq"`
}
