package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the decoded-spreadsheet contract the importer works against.
// Cells are surfaced as any (string, float64, time.Time or nil); the
// timeparse package is the single place that branches on the representation.
type Workbook interface {
	SheetNames() []string
	Rows(name string) ([][]any, error)
}

// ExcelWorkbook adapts an excelize file to the Workbook interface.
type ExcelWorkbook struct {
	file *excelize.File
}

// Open reads a workbook from disk.
func Open(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &ExcelWorkbook{file: f}, nil
}

// OpenReader reads a workbook from an already-open stream. The whole byte
// buffer is consumed before any sheet is touched; there is no streaming path.
func OpenReader(r io.Reader) (*ExcelWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	return &ExcelWorkbook{file: f}, nil
}

// SheetNames lists the workbook's sheets in file order.
func (w *ExcelWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Rows returns the sheet's cells row-major. excelize hands formatted cell
// text back, so every cell comes through as a string here; typed values
// (serial dates, native times) only appear through other Workbook
// implementations.
func (w *ExcelWorkbook) Rows(name string) ([][]any, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimRight(cell, "\r")
		}
		out[i] = cells
	}
	return out, nil
}

// Close releases the underlying file handle.
func (w *ExcelWorkbook) Close() error {
	return w.file.Close()
}
