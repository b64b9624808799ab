package models

import "encoding/json"

// Slot is one row of a printed column: a record, or blank when Record is nil.
type Slot struct {
	Record *RankedRecord
}

// BlankSlot returns a slot with no data.
func BlankSlot() Slot {
	return Slot{}
}

// IsBlank reports whether the slot carries no record.
func (s Slot) IsBlank() bool {
	return s.Record == nil
}

// MarshalJSON encodes blank slots as null.
func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Record)
}

// UnmarshalJSON decodes null as a blank slot.
func (s *Slot) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.Record)
}

// Page is the printable unit: two columns of equal, fixed length.
type Page struct {
	// Left holds the first records of the page, padded with blank slots.
	Left []Slot `json:"left"`
	// Right holds the remaining records of the page, padded with blank slots.
	Right []Slot `json:"right"`
}

// Records returns the page's real records, left column first.
func (p Page) Records() []RankedRecord {
	var out []RankedRecord
	for _, col := range [][]Slot{p.Left, p.Right} {
		for _, s := range col {
			if !s.IsBlank() {
				out = append(out, *s.Record)
			}
		}
	}
	return out
}
