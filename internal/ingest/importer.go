package ingest

import (
	"fmt"
	"log/slog"
	"strings"

	"ponto/internal/model"
	"ponto/internal/timeparse"
)

// Ajuste thresholds, minutes since midnight. A clock-in after 10:00 or an
// interval/return after 17:00 marks the row as a manual adjustment entry.
const (
	entradaAjusteAfter   = 10 * 60
	intervaloAjusteAfter = 17 * 60
	retornoAjusteAfter   = 17 * 60
)

// Inspect reports every sheet's row count and validation outcome without
// importing anything. It backs the sheet-picker flow: the operator sees which
// sheets are usable before committing to an import.
func Inspect(wb Workbook) []model.SheetInfo {
	names := wb.SheetNames()
	infos := make([]model.SheetInfo, 0, len(names))
	for _, name := range names {
		rows, err := wb.Rows(name)
		if err != nil {
			infos = append(infos, model.SheetInfo{
				Name:           name,
				MissingColumns: append([]string(nil), RequiredColumns...),
			})
			continue
		}
		infos = append(infos, sheetInfo(name, rows))
	}
	return infos
}

func sheetInfo(name string, rows [][]any) model.SheetInfo {
	info := model.SheetInfo{Name: name}
	if len(rows) == 0 {
		info.MissingColumns = append([]string(nil), RequiredColumns...)
		return info
	}
	info.RowCount = len(rows) - 1
	info.MissingColumns = missingColumns(headerTexts(rows[0]))
	info.HasRequiredColumns = len(info.MissingColumns) == 0
	return info
}

// ImportAll imports every sheet in the workbook.
func ImportAll(wb Workbook) *model.ImportResult {
	return ImportSheets(wb, wb.SheetNames())
}

// ImportSheets validates and normalizes the named sheets into records.
//
// Each sheet validates independently. Row-level anomalies become warnings and
// never block the import; a missing sheet or missing required columns is an
// error that fails the whole import. On failure the result carries every
// collected error but a nil record list, so callers can never aggregate a
// partial data set.
func ImportSheets(wb Workbook, names []string) *model.ImportResult {
	return ImportSheetsProgress(wb, names, nil)
}

// ImportSheetsProgress is ImportSheets with a per-sheet callback, invoked
// before each sheet is processed. Used by the CLI to drive a progress bar.
func ImportSheetsProgress(wb Workbook, names []string, onSheet func(name string)) *model.ImportResult {
	result := &model.ImportResult{}

	available := make(map[string]bool)
	for _, name := range wb.SheetNames() {
		available[name] = true
	}

	for _, name := range names {
		if onSheet != nil {
			onSheet(name)
		}

		if !available[name] {
			result.Errors = append(result.Errors, fmt.Sprintf("sheet %q not found in workbook", name))
			continue
		}

		rows, err := wb.Rows(name)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("sheet %q could not be read: %v", name, err))
			continue
		}

		info := sheetInfo(name, rows)
		result.Sheets = append(result.Sheets, info)

		if !info.HasRequiredColumns {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"sheet %q: required columns missing: %s", name, strings.Join(info.MissingColumns, ", ")))
			continue
		}

		importRows(name, rows, result)
	}

	result.Success = len(result.Errors) == 0
	if !result.Success {
		result.Records = nil
	}

	slog.Info("import finished",
		"sheets", len(names),
		"records", len(result.Records),
		"warnings", len(result.Warnings),
		"errors", len(result.Errors),
		"success", result.Success)

	return result
}

// importRows extracts one record per data row of a validated sheet,
// appending records and warnings to the result.
func importRows(sheet string, rows [][]any, result *model.ImportResult) {
	cols := columnIndex(headerTexts(rows[0]))

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		// Display row index: the header occupies row 1.
		rowIndex := i + 1

		id := trimmed(timeparse.CellText(cellAt(row, cols, ColID)))
		colaborador := trimmed(timeparse.CellText(cellAt(row, cols, ColColaborador)))

		if id == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"sheet %q, row %d: empty ID, row skipped", sheet, rowIndex))
			continue
		}
		if colaborador == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"sheet %q, row %d: empty collaborator name", sheet, rowIndex))
		}

		diferencaCell := cellAt(row, cols, ColDiferenca)
		diferencaRaw := timeparse.CellText(diferencaCell)
		delta := timeparse.ParseDelta(diferencaCell)
		if delta.ParseError {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"sheet %q, row %d: unrecognized Diferenca value %q", sheet, rowIndex, diferencaRaw))
		}

		record := model.Record{
			ID:            id,
			Colaborador:   colaborador,
			Classificacao: trimmed(timeparse.CellText(cellAt(row, cols, ColClassificacao))),
			DiferencaRaw:  diferencaRaw,
			DeltaMinutes:  delta.Minutes,
			IsMissing:     delta.Missing,
			ParseError:    delta.ParseError,
			Gestor:        trimmed(timeparse.CellText(cellAt(row, cols, ColGestor))),
			Dia:           trimmed(timeparse.CellText(cellAt(row, cols, ColDia))),
			Entrada:       trimmed(timeparse.CellText(cellAt(row, cols, ColEntrada))),
			Intervalo:     trimmed(timeparse.CellText(cellAt(row, cols, ColIntervalo))),
			Retorno:       trimmed(timeparse.CellText(cellAt(row, cols, ColRetorno))),
			Saida:         trimmed(timeparse.CellText(cellAt(row, cols, ColSaida))),
			SourceSheet:   sheet,
			RowIndex:      rowIndex,
		}

		if date, ok := timeparse.ParseDate(cellAt(row, cols, ColData)); ok {
			record.Data = &date
		}

		record.IsAjuste = isAjuste(record.Entrada, record.Intervalo, record.Retorno)

		result.Records = append(result.Records, record)
	}
}

// isAjuste marks rows whose entry/interval/return times sit past the manual
// adjustment thresholds. Text that does not parse as a clock time never
// triggers the flag.
func isAjuste(entrada, intervalo, retorno string) bool {
	if m, ok := timeparse.ClockMinutes(entrada); ok && m > entradaAjusteAfter {
		return true
	}
	if m, ok := timeparse.ClockMinutes(intervalo); ok && m > intervaloAjusteAfter {
		return true
	}
	if m, ok := timeparse.ClockMinutes(retorno); ok && m > retornoAjusteAfter {
		return true
	}
	return false
}

// columnIndex maps canonical (or passthrough) column names to their first
// position in the header row.
func columnIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		name := MapColumn(h)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

func headerTexts(row []any) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		headers[i] = timeparse.CellText(cell)
	}
	return headers
}

func cellAt(row []any, cols map[string]int, name string) any {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
