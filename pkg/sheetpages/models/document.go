package models

// Document is the pipeline result for one input file.
type Document struct {
	// BookName is the input file name (no path), empty for anonymous readers.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name,omitempty"`
	// ColumnSize is the number of slots in every page column.
	ColumnSize int `json:"column_size"`
	// Total is the number of ranked records across all pages.
	Total int `json:"total"`
	// Pages is the page layout in print order.
	Pages []Page `json:"pages"`
}
