package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/TirlaP/lista-firme-backend/internal/company"
)

const sheetName = "Firme"

// xlsxExporter builds the workbook in memory; the format is not
// streamable, so Flush is a no-op and the file is written on Close.
type xlsxExporter struct {
	file *excelize.File
	w    io.Writer
	row  int
}

func newXLSXExporter(w io.Writer) (*xlsxExporter, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	headers := Headers()
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	return &xlsxExporter{file: f, w: w, row: 1}, nil
}

func (e *xlsxExporter) Row(v *company.CompanyView) error {
	e.row++
	cell, _ := excelize.CoordinatesToCellName(1, e.row)
	values := Row(v)
	cells := make([]any, len(values))
	for i, s := range values {
		cells[i] = s
	}
	return e.file.SetSheetRow(sheetName, cell, &cells)
}

func (e *xlsxExporter) Flush() error {
	return nil
}

func (e *xlsxExporter) Close() error {
	defer e.file.Close()
	if err := e.file.Write(e.w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
