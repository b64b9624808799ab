package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"github.com/xuri/excelize/v2"
)

// XLSXDecoder decodes Office Open XML workbooks.
type XLSXDecoder struct{}

// Decode opens the workbook in r and returns the rows of the selected sheet.
func (XLSXDecoder) Decode(r io.Reader, sheet string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := ExtractRows(f, name)
	if err != nil {
		return nil, err
	}
	return &Sheet{Name: name, Rows: rows}, nil
}

// resolveSheet returns sheet if present, or the first sheet when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

// ExtractRows extracts typed cell values from a sheet.
// Every row is returned, including empty ones, so positions match the sheet.
func ExtractRows(f *excelize.File, sheetName string) ([]models.RawRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.RawRow, len(rows))
	for rowIdx, row := range rows {
		raw := make(models.RawRow, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}

			// Raw values lose their type; ask the cell for it
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			raw[colIdx] = typedValue(cellType, cellValue)
		}
		result[rowIdx] = raw
	}

	return result, nil
}

// typedValue converts a raw cell string into a Go value according to its type.
func typedValue(cellType excelize.CellType, s string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		// Raw booleans are stored as 1/0
		return s == "1" || s == "TRUE" || s == "true"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(s)
	default:
		return s
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
