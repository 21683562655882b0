// Package ingest turns raw workbook sheets into normalized timesheet records.
// It owns header canonicalization, sheet validation and row extraction; no
// alias or raw-cell handling leaks past this package.
package ingest

import (
	"ponto/internal/common"
)

// Canonical column names. The spreadsheets come from several managers who
// never agreed on headers, so everything is matched through the alias table.
const (
	ColColaborador   = "Colaborador"
	ColID            = "ID"
	ColClassificacao = "Classificacao"
	ColDiferenca     = "Diferenca"
	ColGestor        = "Gestor"
	ColData          = "Data"
	ColDia           = "Dia"
	ColEntrada       = "Entrada"
	ColIntervalo     = "Intervalo"
	ColRetorno       = "Retorno"
	ColSaida         = "Saida"
)

// RequiredColumns must all be present (after alias mapping) for a sheet to
// be importable.
var RequiredColumns = []string{ColColaborador, ColID, ColClassificacao, ColDiferenca}

// columnAliases maps canonical names to the header spellings seen in the
// wild. Matching is accent- and case-insensitive.
var columnAliases = map[string][]string{
	ColColaborador:   {"colaborador", "nome", "funcionario", "funcionário", "employee"},
	ColID:            {"id", "codigo", "código", "matricula", "matrícula"},
	ColClassificacao: {"classificacao", "classificação", "tipo", "type", "status"},
	ColDiferenca:     {"diferenca", "diferença", "diff", "delta"},
	ColGestor:        {"gestor", "manager", "supervisor"},
	ColData:          {"data", "date"},
	ColDia:           {"dia", "dia da semana", "weekday"},
	ColEntrada:       {"entrada", "inicio", "início"},
	ColIntervalo:     {"intervalo", "saida intervalo", "saída intervalo"},
	ColRetorno:       {"retorno", "volta"},
	ColSaida:         {"saida", "saída", "fim"},
}

// aliasIndex is columnAliases inverted with folded keys, including each
// canonical name itself.
var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range columnAliases {
		idx[common.Fold(canonical)] = canonical
		for _, alias := range aliases {
			idx[common.Fold(alias)] = canonical
		}
	}
	return idx
}()

// MapColumn resolves a raw header to its canonical name. Headers with no
// known alias pass through trimmed, so unknown columns stay visible instead
// of disappearing.
func MapColumn(header string) string {
	if canonical, ok := aliasIndex[common.Fold(header)]; ok {
		return canonical
	}
	return trimmed(header)
}

// missingColumns reports which required canonical columns are absent from a
// header row.
func missingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[MapColumn(h)] = true
	}

	var missing []string
	for _, required := range RequiredColumns {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}
