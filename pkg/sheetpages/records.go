package sheetpages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
)

// Column positions read from every data row (0-based).
const (
	ColumnBIndex = 1
	ColumnCIndex = 2
)

// ExtractRecords converts decoded rows into records.
// rows[0] is a header and is always skipped. Rows whose two target cells
// are both empty after trimming are dropped. Short rows read as empty text.
func ExtractRecords(rows []models.RawRow) []models.Record {
	if len(rows) < 2 {
		return nil
	}

	result := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.Record{
			ColumnB: strings.TrimSpace(CellText(row.Cell(ColumnBIndex))),
			ColumnC: strings.TrimSpace(CellText(row.Cell(ColumnCIndex))),
		}
		if rec.IsEmpty() {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// CellText returns the textual form of a decoded cell value.
func CellText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(val)
	}
}
