// Package parser provides spreadsheet decoding for the page pipeline.
package parser

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
)

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Sheet is the decoded content of one worksheet.
type Sheet struct {
	// Name is the worksheet name; empty for formats without sheets.
	Name string
	// Rows holds every row in sheet order, header included.
	Rows []models.RawRow
}

// Decoder turns spreadsheet bytes into rows of cell values.
type Decoder interface {
	// Decode reads one sheet from r. An empty sheet name selects the first one.
	Decode(r io.Reader, sheet string) (*Sheet, error)
}

// DecoderFor picks a decoder from the file extension: .csv files are read as
// comma-separated text, everything else as an xlsx workbook.
func DecoderFor(path string) Decoder {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSVDecoder{}
	}
	return XLSXDecoder{}
}
