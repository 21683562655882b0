package cli

import (
	"fmt"
	"sort"
	"strings"

	"ponto/internal/model"
)

// RenderSheetList renders the sheet-picker view: every sheet with its row
// count and validation outcome.
func RenderSheetList(sheets []model.SheetInfo) string {
	var b strings.Builder
	b.WriteString(FormatTitle("Workbook sheets"))
	b.WriteString("\n")

	for _, s := range sheets {
		if s.HasRequiredColumns {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				SuccessStyle.Render(SuccessIcon),
				s.Name,
				SubtleStyle.Render(fmt.Sprintf("(%d rows)", s.RowCount))))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			ErrorStyle.Render(ErrorIcon),
			s.Name,
			ErrorStyle.Render("missing: "+strings.Join(s.MissingColumns, ", "))))
	}
	return b.String()
}

// RenderImportIssues renders errors and warnings from an import. Warnings
// are truncated for display at maxWarnings; the full list is always kept on
// the result itself.
func RenderImportIssues(result *model.ImportResult, maxWarnings int) string {
	var b strings.Builder

	for _, e := range result.Errors {
		b.WriteString(FormatError(e))
		b.WriteString("\n")
	}

	shown := result.Warnings
	truncated := 0
	if maxWarnings >= 0 && len(shown) > maxWarnings {
		truncated = len(shown) - maxWarnings
		shown = shown[:maxWarnings]
	}
	for _, w := range shown {
		b.WriteString(FormatWarning(w))
		b.WriteString("\n")
	}
	if truncated > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  … and %d more warnings", truncated)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSummaryTable renders the per-employee table, limited to the first
// limit rows when limit is non-negative.
func RenderSummaryTable(summaries []model.Summary, limit int) string {
	var b strings.Builder
	b.WriteString(FormatTitle("Employees"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-8s %-28s %5s %5s %5s %5s %5s %12s %12s",
		"ID", "Colaborador", "Dias", "S/Dad", "Ajust", "Extra", "Atra", "Total", "Ajustado")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	shown := summaries
	if limit >= 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	for _, s := range shown {
		name := s.Colaborador
		if len(s.AlternativeNames) > 0 {
			name += fmt.Sprintf(" (+%d)", len(s.AlternativeNames))
		}
		b.WriteString(fmt.Sprintf("%-8s %-28s %5d %5d %5d %5d %5d %12s %12s\n",
			s.ID,
			truncate(name, 28),
			s.CountDias,
			s.CountSemDados,
			s.CountAjuste,
			s.CountHoraExtra,
			s.CountAtraso,
			model.FormatMinutes(s.TotalDeltaMinutes),
			FormatBalance(model.FormatMinutes(s.AdjustedTotalMinutes), s.AdjustedTotalMinutes)))
	}

	if len(shown) < len(summaries) {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  … %d of %d employees shown", len(shown), len(summaries))))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGlobalStats renders the dataset-wide rollup.
func RenderGlobalStats(stats model.GlobalStats) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(ChartIcon + " Global stats"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Collaborators:   %d\n", stats.TotalColaboradores))
	b.WriteString(fmt.Sprintf("  Records:         %d\n", stats.TotalRecords))
	b.WriteString(fmt.Sprintf("  Raw total:       %s (%s)\n",
		model.FormatMinutes(stats.TotalBrutoMinutes), model.FormatDecimalHours(stats.TotalBrutoMinutes)))
	b.WriteString(fmt.Sprintf("  Adjusted total:  %s (%s)\n",
		model.FormatMinutes(stats.TotalAjustadoMinutes), model.FormatDecimalHours(stats.TotalAjustadoMinutes)))
	b.WriteString(fmt.Sprintf("  Missing data:    %d\n", stats.TotalSemDados))
	b.WriteString(fmt.Sprintf("  Parse errors:    %d\n", stats.TotalParseErrors))
	b.WriteString(fmt.Sprintf("  Ajustes:         %d\n", stats.TotalAjuste))
	b.WriteString(fmt.Sprintf("  Hora Extra / Atraso / Normal / Outros:  %d / %d / %d / %d\n",
		stats.CountHoraExtra, stats.CountAtraso, stats.CountNormal, stats.CountOutros))

	if len(stats.ByClassificacao) > 0 {
		b.WriteString("  By classification:\n")
		labels := make([]string, 0, len(stats.ByClassificacao))
		for label := range stats.ByClassificacao {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			b.WriteString(fmt.Sprintf("    %-20s %d\n", label, stats.ByClassificacao[label]))
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
