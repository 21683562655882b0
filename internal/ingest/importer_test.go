package ingest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorkbook backs the importer tests with in-memory sheets.
type fakeWorkbook struct {
	sheets map[string][][]any
	order  []string
}

func newFakeWorkbook() *fakeWorkbook {
	return &fakeWorkbook{sheets: make(map[string][][]any)}
}

func (f *fakeWorkbook) add(name string, rows [][]any) *fakeWorkbook {
	f.sheets[name] = rows
	f.order = append(f.order, name)
	return f
}

func (f *fakeWorkbook) SheetNames() []string { return f.order }

func (f *fakeWorkbook) Rows(name string) ([][]any, error) {
	rows, ok := f.sheets[name]
	if !ok {
		return nil, fmt.Errorf("no sheet %q", name)
	}
	return rows, nil
}

var defaultHeader = []any{"Colaborador", "ID", "Classificacao", "Diferenca", "Data", "Entrada", "Intervalo", "Retorno"}

func TestImportSheetsValid(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"Ana Souza", "101", "Normal", "+2h55min", "15/01/2024", "08:00", "12:00", "13:00"},
		{"Bruno Lima", "102", "Atraso", "-30min", "15/01/2024", "09:10", "", ""},
		{"Ana Souza", "101", "Hora Extra", "+1h", "", "", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro"})

	require.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Records, 3)

	first := result.Records[0]
	assert.Equal(t, "101", first.ID)
	assert.Equal(t, "Ana Souza", first.Colaborador)
	assert.Equal(t, 175, first.DeltaMinutes)
	assert.False(t, first.IsMissing)
	assert.False(t, first.ParseError)
	assert.False(t, first.IsAjuste)
	assert.Equal(t, "Janeiro", first.SourceSheet)
	assert.Equal(t, 2, first.RowIndex, "first data row sits under the header")
	require.NotNil(t, first.Data)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *first.Data)

	third := result.Records[2]
	assert.Equal(t, 4, third.RowIndex)
	assert.Nil(t, third.Data)
}

func TestImportSheetsHeaderAliases(t *testing.T) {
	wb := newFakeWorkbook().add("Fevereiro", [][]any{
		{"Funcionário", "Matrícula", "Classificação", "Diferença"},
		{"Carla Dias", "201", "Hora Extra", "+45min"},
	})

	result := ImportSheets(wb, []string{"Fevereiro"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "201", result.Records[0].ID)
	assert.Equal(t, 45, result.Records[0].DeltaMinutes)
}

func TestImportSheetsEmptyID(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"Ana Souza", "", "Normal", "+5min", "", "", "", ""},
		{"Bruno Lima", "102", "Normal", "+5min", "", "", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "102", result.Records[0].ID)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `sheet "Janeiro", row 2`)
	assert.Contains(t, result.Warnings[0], "empty ID")
}

func TestImportSheetsEmptyCollaboratorKept(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"", "101", "Normal", "+5min", "", "", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 1, "empty name keeps the row")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "empty collaborator name")
}

func TestImportSheetsParseErrorWarns(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"Ana Souza", "101", "Normal", "abc", "", "", "", ""},
		{"Ana Souza", "101", "Normal", "-", "", "", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 2)

	assert.True(t, result.Records[0].ParseError)
	assert.Zero(t, result.Records[0].DeltaMinutes)
	assert.False(t, result.Records[0].IsMissing)

	assert.True(t, result.Records[1].IsMissing)
	assert.False(t, result.Records[1].ParseError)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unrecognized Diferenca value "abc"`)
}

func TestImportSheetsAjuste(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"Ana Souza", "101", "Normal", "+5min", "", "10:01", "", ""},
		{"Ana Souza", "101", "Normal", "+5min", "", "10:00", "", ""},
		{"Bruno Lima", "102", "Normal", "+5min", "", "", "17:30", ""},
		{"Bruno Lima", "102", "Normal", "+5min", "", "", "", "17:01"},
		{"Carla Dias", "103", "Normal", "+5min", "", "manhã", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 5)
	assert.True(t, result.Records[0].IsAjuste, "entrada after 10:00")
	assert.False(t, result.Records[1].IsAjuste, "entrada exactly 10:00 is not past the threshold")
	assert.True(t, result.Records[2].IsAjuste, "intervalo after 17:00")
	assert.True(t, result.Records[3].IsAjuste, "retorno after 17:00")
	assert.False(t, result.Records[4].IsAjuste, "unparseable time never flags")
}

func TestImportSheetsMissingColumns(t *testing.T) {
	wb := newFakeWorkbook().add("Quebrada", [][]any{
		{"Colaborador", "Observações"},
		{"Ana Souza", "nada"},
	})

	result := ImportSheets(wb, []string{"Quebrada"})

	assert.False(t, result.Success)
	assert.Nil(t, result.Records)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ID, Classificacao, Diferenca")

	require.Len(t, result.Sheets, 1)
	assert.False(t, result.Sheets[0].HasRequiredColumns)
	assert.Equal(t, []string{"ID", "Classificacao", "Diferenca"}, result.Sheets[0].MissingColumns)
}

func TestImportSheetsSheetNotFound(t *testing.T) {
	wb := newFakeWorkbook().add("Janeiro", [][]any{
		defaultHeader,
		{"Ana Souza", "101", "Normal", "+5min", "", "", "", ""},
	})

	result := ImportSheets(wb, []string{"Janeiro", "Marco"})

	assert.False(t, result.Success)
	assert.Nil(t, result.Records, "one bad sheet fails the whole import")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `sheet "Marco" not found`)

	// The valid sheet is still reported.
	require.Len(t, result.Sheets, 1)
	assert.True(t, result.Sheets[0].HasRequiredColumns)
}

func TestImportSheetsTypedCells(t *testing.T) {
	date := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	wb := newFakeWorkbook().add("Typed", [][]any{
		{"Colaborador", "ID", "Classificacao", "Diferenca", "Data"},
		{"Ana Souza", 101, "Normal", float64(45), date},
	})

	result := ImportSheets(wb, []string{"Typed"})

	require.True(t, result.Success)
	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "101", rec.ID)
	assert.Equal(t, 45, rec.DeltaMinutes)
	require.NotNil(t, rec.Data)
	assert.Equal(t, date, *rec.Data)
}

func TestInspect(t *testing.T) {
	wb := newFakeWorkbook().
		add("Janeiro", [][]any{
			defaultHeader,
			{"Ana Souza", "101", "Normal", "+5min", "", "", "", ""},
			{"Bruno Lima", "102", "Normal", "+5min", "", "", "", ""},
		}).
		add("Vazia", [][]any{}).
		add("Quebrada", [][]any{{"Colaborador"}})

	infos := Inspect(wb)

	require.Len(t, infos, 3)

	assert.Equal(t, "Janeiro", infos[0].Name)
	assert.Equal(t, 2, infos[0].RowCount)
	assert.True(t, infos[0].HasRequiredColumns)

	assert.False(t, infos[1].HasRequiredColumns)
	assert.Equal(t, RequiredColumns, infos[1].MissingColumns)

	assert.False(t, infos[2].HasRequiredColumns)
	assert.Equal(t, []string{"ID", "Classificacao", "Diferenca"}, infos[2].MissingColumns)
}

func TestImportSheetsProgressCallback(t *testing.T) {
	wb := newFakeWorkbook().
		add("A", [][]any{defaultHeader}).
		add("B", [][]any{defaultHeader})

	var seen []string
	ImportSheetsProgress(wb, []string{"A", "B"}, func(name string) {
		seen = append(seen, name)
	})

	assert.Equal(t, []string{"A", "B"}, seen)
}
