// Package export writes summaries and records to CSV for spreadsheets and
// downstream tooling. Semicolon-separated with CRLF endings, the convention
// Brazilian Excel expects.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"ponto/internal/model"
)

type summaryRow struct {
	ID                 string `csv:"id"`
	Colaborador        string `csv:"colaborador"`
	NomesAlternativos  string `csv:"nomes_alternativos"`
	Dias               int    `csv:"dias"`
	SemDados           int    `csv:"sem_dados"`
	ErrosParse         int    `csv:"erros_parse"`
	Ajustes            int    `csv:"ajustes"`
	HoraExtra          int    `csv:"hora_extra"`
	Atraso             int    `csv:"atraso"`
	Normal             int    `csv:"normal"`
	Outros             int    `csv:"outros"`
	TotalMinutos       int    `csv:"total_minutos"`
	BonusMinutos       int    `csv:"bonus_minutos"`
	PenalidadeMinutos  int    `csv:"penalidade_minutos"`
	TotalAjustadoMin   int    `csv:"total_ajustado_minutos"`
	TotalAjustadoHoras string `csv:"total_ajustado"`
}

type recordRow struct {
	Aba           string `csv:"aba"`
	Linha         int    `csv:"linha"`
	ID            string `csv:"id"`
	Colaborador   string `csv:"colaborador"`
	Classificacao string `csv:"classificacao"`
	Diferenca     string `csv:"diferenca"`
	Minutos       int    `csv:"minutos"`
	SemDados      bool   `csv:"sem_dados"`
	ErroParse     bool   `csv:"erro_parse"`
	Ajuste        bool   `csv:"ajuste"`
	Data          string `csv:"data"`
	Dia           string `csv:"dia"`
	Entrada       string `csv:"entrada"`
	Intervalo     string `csv:"intervalo"`
	Retorno       string `csv:"retorno"`
	Saida         string `csv:"saida"`
	Gestor        string `csv:"gestor"`
}

// WriteSummaries writes one CSV line per employee summary.
func WriteSummaries(w io.Writer, summaries []model.Summary) error {
	rows := make([]summaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, summaryRow{
			ID:                 s.ID,
			Colaborador:        s.Colaborador,
			NomesAlternativos:  strings.Join(s.AlternativeNames, "|"),
			Dias:               s.CountDias,
			SemDados:           s.CountSemDados,
			ErrosParse:         s.CountParseErrors,
			Ajustes:            s.CountAjuste,
			HoraExtra:          s.CountHoraExtra,
			Atraso:             s.CountAtraso,
			Normal:             s.CountNormal,
			Outros:             s.CountOutros,
			TotalMinutos:       s.TotalDeltaMinutes,
			BonusMinutos:       s.TotalExtraBonusMinutes,
			PenalidadeMinutos:  s.TotalAtrasoPenaltyMinutes,
			TotalAjustadoMin:   s.AdjustedTotalMinutes,
			TotalAjustadoHoras: model.FormatMinutes(s.AdjustedTotalMinutes),
		})
	}
	return marshalCSV(w, rows)
}

// WriteRecords writes one CSV line per normalized record, provenance
// included, for per-row drill-down outside the tool.
func WriteRecords(w io.Writer, records []model.Record) error {
	rows := make([]recordRow, 0, len(records))
	for _, r := range records {
		row := recordRow{
			Aba:           r.SourceSheet,
			Linha:         r.RowIndex,
			ID:            r.ID,
			Colaborador:   r.Colaborador,
			Classificacao: r.Classificacao,
			Diferenca:     r.DiferencaRaw,
			Minutos:       r.DeltaMinutes,
			SemDados:      r.IsMissing,
			ErroParse:     r.ParseError,
			Ajuste:        r.IsAjuste,
			Dia:           r.Dia,
			Entrada:       r.Entrada,
			Intervalo:     r.Intervalo,
			Retorno:       r.Retorno,
			Saida:         r.Saida,
			Gestor:        r.Gestor,
		}
		if r.Data != nil {
			row.Data = r.Data.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return marshalCSV(w, rows)
}

func marshalCSV(w io.Writer, rows any) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	writer.UseCRLF = true

	if err := gocsv.MarshalCSV(rows, writer); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
