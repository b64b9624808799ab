package output

import (
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/parser"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that receives the rendered pages.
const SheetName = "Pages"

// Headers are the column titles printed above each table.
var Headers = []interface{}{"#", "Column B", "Column C"}

const (
	leftCol   = 1 // A
	rightCol  = 5 // E, column D is a gutter
	tableCols = 3
)

// RenderWorkbook lays the document out as a printable workbook.
//
// Each page becomes a block of one header row plus ColumnSize rows, with the
// left table in A:C and the right table in E:G. Blank slots stay empty.
// A row page break follows every block and the print area lists every block.
func RenderWorkbook(doc *models.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}

	if err := renderPages(f, doc); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func renderPages(f *excelize.File, doc *models.Document) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 6); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "E", "E", 6); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "D", "D", 2); err != nil {
		return err
	}

	blockRows := doc.ColumnSize + 1
	areas := make([]models.PageArea, 0, len(doc.Pages))
	for i, page := range doc.Pages {
		top := i*blockRows + 1
		for _, table := range []struct {
			col   int
			slots []models.Slot
		}{{leftCol, page.Left}, {rightCol, page.Right}} {
			if err := writeTable(f, top, table.col, table.slots, headerStyle); err != nil {
				return err
			}
		}

		bottom := top + blockRows - 1
		areas = append(areas, models.PageArea{R1: top, C1: leftCol, R2: bottom, C2: rightCol + tableCols - 1})
		if i < len(doc.Pages)-1 {
			cell, err := excelize.CoordinatesToCellName(leftCol, bottom+1)
			if err != nil {
				return err
			}
			if err := f.InsertPageBreak(SheetName, cell); err != nil {
				return err
			}
		}
	}

	if len(areas) == 0 {
		return nil
	}
	ref, err := parser.FormatPrintArea(SheetName, areas)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: ref,
		Scope:    SheetName,
	})
}

// writeTable writes the header at row top and one slot per following row.
func writeTable(f *excelize.File, top, col int, slots []models.Slot, headerStyle int) error {
	header, err := excelize.CoordinatesToCellName(col, top)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, header, &Headers); err != nil {
		return err
	}
	headerEnd, err := excelize.CoordinatesToCellName(col+tableCols-1, top)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, header, headerEnd, headerStyle); err != nil {
		return err
	}

	for i, slot := range slots {
		if slot.IsBlank() {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col, top+1+i)
		if err != nil {
			return err
		}
		row := []interface{}{slot.Record.Seq, slot.Record.ColumnB, slot.Record.ColumnC}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
