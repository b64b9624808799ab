package sheetpages

import "github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"

// Paginate lays ranked records out into pages.
//
// Records are cut into consecutive chunks of at most pageSize. The first
// columnSize records of a chunk fill the left column and the rest fill the
// right column. Both columns are padded with blank slots to exactly
// columnSize entries. Empty input yields an empty, non-nil page list.
//
// Non-positive sizes fall back to the defaults, columnSize is capped at
// MaxColumnSize, and a chunk never holds more than two columns' worth of
// records.
func Paginate(records []models.RankedRecord, pageSize, columnSize int) []models.Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if columnSize <= 0 {
		columnSize = DefaultColumnSize
	}
	columnSize = min(columnSize, MaxColumnSize)
	pageSize = min(pageSize, 2*columnSize)

	if len(records) == 0 {
		return []models.Page{}
	}

	pages := make([]models.Page, 0, (len(records)+pageSize-1)/pageSize)
	for start := 0; start < len(records); start += pageSize {
		chunk := records[start:min(start+pageSize, len(records))]
		split := min(columnSize, len(chunk))
		pages = append(pages, models.Page{
			Left:  fillColumn(chunk[:split], columnSize),
			Right: fillColumn(chunk[split:], columnSize),
		})
	}
	return pages
}

// fillColumn copies records into a column of exactly size slots.
func fillColumn(records []models.RankedRecord, size int) []models.Slot {
	col := make([]models.Slot, size)
	for i := range records {
		rec := records[i]
		col[i] = models.Slot{Record: &rec}
	}
	return col
}
