// Package model defines the core domain models used throughout the application.
package model

import "time"

// Record is a single normalized timesheet row: one employee, one day.
// Rows only become Records after the ingest layer has resolved column
// aliases and parsed the Diferença field, so every Record has a non-empty ID.
type Record struct {
	Data          *time.Time
	ID            string
	Colaborador   string
	Classificacao string
	DiferencaRaw  string // Diferença cell exactly as written

	// Optional columns carried through for display and export only.
	Gestor    string
	Dia       string
	Entrada   string
	Intervalo string
	Retorno   string
	Saida     string

	// Provenance, used in warnings and drill-down ordering.
	SourceSheet string
	RowIndex    int

	DeltaMinutes int

	IsMissing  bool // Diferença was empty or a placeholder dash
	ParseError bool // Diferença was non-empty but unrecognized
	IsAjuste   bool // manual adjustment row (entrada/intervalo/retorno past threshold)
}

// Summary aggregates all Records sharing one employee ID.
type Summary struct {
	ID          string
	Colaborador string // most frequent name among the group's records

	// Other spellings of the name seen for this ID, most frequent first.
	AlternativeNames []string

	CountDias        int // non-missing, non-ajuste records
	CountSemDados    int
	CountParseErrors int
	CountAjuste      int

	CountHoraExtra int
	CountAtraso    int
	CountNormal    int
	CountOutros    int

	TotalDeltaMinutes         int
	TotalExtraBonusMinutes    int
	TotalAtrasoPenaltyMinutes int
	AdjustedTotalMinutes      int

	Records []Record
}

// GlobalStats is a single read-only rollup over an entire record set.
type GlobalStats struct {
	ByClassificacao map[string]int

	TotalColaboradores   int
	TotalRecords         int
	TotalBrutoMinutes    int
	TotalAjustadoMinutes int
	TotalSemDados        int
	TotalParseErrors     int
	TotalAjuste          int

	CountHoraExtra int
	CountAtraso    int
	CountNormal    int
	CountOutros    int
}

// NaoInformado is the classification bucket key for rows with an empty label.
const NaoInformado = "Não informado"

// Policy configures the bonus/penalty adjustment applied during aggregation.
// Hours are applied once per matching record and converted to minutes.
type Policy struct {
	ExtraBonusHours    float64
	AtrasoPenaltyHours float64

	// IncludeAjusteInTotals keeps ajuste rows in TotalDeltaMinutes. The
	// source data treats this inconsistently, so it is an explicit choice
	// here rather than a constant.
	IncludeAjusteInTotals bool

	// SmallDeltaCutoffMinutes drops |delta| <= cutoff from the totals
	// accumulation when positive. Zero disables the cutoff. Counters are
	// never affected.
	SmallDeltaCutoffMinutes int
}

// DefaultPolicy applies no bonus or penalty: adjusted totals equal raw totals.
func DefaultPolicy() Policy {
	return Policy{
		ExtraBonusHours:       0,
		AtrasoPenaltyHours:    0,
		IncludeAjusteInTotals: true,
	}
}

// Valid reports whether the policy's numeric knobs are in range.
func (p Policy) Valid() bool {
	return p.ExtraBonusHours >= 0 && p.AtrasoPenaltyHours >= 0 && p.SmallDeltaCutoffMinutes >= 0
}

// SheetInfo describes one workbook sheet as seen by the validator.
type SheetInfo struct {
	Name               string
	MissingColumns     []string
	RowCount           int
	HasRequiredColumns bool
}

// ImportResult is the outcome of importing one or more sheets.
// Success is true only when every selected sheet validated; on failure
// Records is nil so callers can never aggregate a partial record set.
type ImportResult struct {
	Sheets   []SheetInfo
	Records  []Record
	Errors   []string
	Warnings []string
	Success  bool
}
