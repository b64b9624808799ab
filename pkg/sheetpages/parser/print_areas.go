package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name Excel uses for print areas.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PageArea {
	result := make(map[string][]models.PageArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// FormatPrintArea builds a print area reference such as
// 'Pages'!$A$1:$G$51,'Pages'!$A$52:$G$102.
func FormatPrintArea(sheetName string, areas []models.PageArea) (string, error) {
	// Quote the sheet name, doubling embedded quotes
	quoted := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	parts := make([]string, 0, len(areas))
	for _, a := range areas {
		start, err := excelize.CoordinatesToCellName(a.C1, a.R1, true)
		if err != nil {
			return "", err
		}
		end, err := excelize.CoordinatesToCellName(a.C2, a.R2, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s!%s:%s", quoted, start, end))
	}
	return strings.Join(parts, ","), nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.PageArea) {
	var areas []models.PageArea
	var sheetName string

	// Split by comma for multiple print areas
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)

		// Split by ! to separate sheet name and range
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		// Remove quotes from sheet name
		if sheetName == "" {
			sheetName = strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.PageArea, bool) {
	// Remove $ signs, then split by :
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.PageArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PageArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PageArea{}, false
	}

	return models.PageArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
