package export

import (
	"encoding/csv"
	"io"

	"github.com/TirlaP/lista-firme-backend/internal/company"
)

// utf8BOM makes spreadsheet tools detect the encoding; Romanian labels
// contain diacritics.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvExporter streams rows straight to the response writer. Flush pushes
// the csv buffer and the underlying flusher so each batch reaches the
// client before the next one is read.
type csvExporter struct {
	w     *csv.Writer
	flush func()
}

func newCSVExporter(w io.Writer, flush func()) (*csvExporter, error) {
	if _, err := w.Write(utf8BOM); err != nil {
		return nil, err
	}
	e := &csvExporter{w: csv.NewWriter(w), flush: flush}
	if err := e.w.Write(Headers()); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *csvExporter) Row(v *company.CompanyView) error {
	return e.w.Write(Row(v))
}

func (e *csvExporter) Flush() error {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return err
	}
	if e.flush != nil {
		e.flush()
	}
	return nil
}

func (e *csvExporter) Close() error {
	return e.Flush()
}
