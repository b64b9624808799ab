package parser

import (
	"bufio"
	"encoding/csv"
	"io"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
)

// CSVDecoder decodes comma-separated text. All cells are strings.
type CSVDecoder struct{}

// Decode reads every record from r. The sheet name is ignored.
func (CSVDecoder) Decode(r io.Reader, _ string) (*Sheet, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && string(bom) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.RawRow, len(records))
	for i, rec := range records {
		row := make(models.RawRow, len(rec))
		for j, cell := range rec {
			if cell != "" {
				row[j] = cell
			}
		}
		rows[i] = row
	}
	return &Sheet{Rows: rows}, nil
}
