package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"ponto/internal/model"
)

// Aggregate groups records by employee ID and computes one Summary per
// distinct ID. It is a pure function of (records, policy): inputs are never
// mutated and repeated calls yield structurally identical output.
func Aggregate(records []model.Record, policy model.Policy) []model.Summary {
	groups := make(map[string][]model.Record)
	var order []string

	for _, r := range records {
		if _, seen := groups[r.ID]; !seen {
			order = append(order, r.ID)
		}
		groups[r.ID] = append(groups[r.ID], r)
	}

	bonusPerRecord := int(math.Round(policy.ExtraBonusHours * 60))
	penaltyPerRecord := int(math.Round(policy.AtrasoPenaltyHours * 60))

	summaries := make([]model.Summary, 0, len(order))
	for _, id := range order {
		group := groups[id]
		main, alternatives := mostFrequentName(group)

		s := model.Summary{
			ID:               id,
			Colaborador:      main,
			AlternativeNames: alternatives,
			Records:          group,
		}

		for _, r := range group {
			if countsTowardTotal(r, policy) {
				s.TotalDeltaMinutes += r.DeltaMinutes
			}

			switch {
			case r.IsMissing:
				s.CountSemDados++
			case !r.IsAjuste:
				s.CountDias++
			}
			if r.IsAjuste {
				s.CountAjuste++
			}
			if r.ParseError {
				s.CountParseErrors++
			}

			switch Classify(r.Classificacao) {
			case BucketHoraExtra:
				s.CountHoraExtra++
				s.TotalExtraBonusMinutes += bonusPerRecord
			case BucketAtraso:
				s.CountAtraso++
				s.TotalAtrasoPenaltyMinutes += penaltyPerRecord
			case BucketNormal:
				s.CountNormal++
			default:
				s.CountOutros++
			}
		}

		s.AdjustedTotalMinutes = s.TotalDeltaMinutes + s.TotalExtraBonusMinutes - s.TotalAtrasoPenaltyMinutes
		summaries = append(summaries, s)
	}

	sortSummaries(summaries)
	return summaries
}

// countsTowardTotal applies the two explicit totals policies: ajuste rows may
// be excluded wholesale, and small deltas may be ignored below a cutoff.
func countsTowardTotal(r model.Record, policy model.Policy) bool {
	if !policy.IncludeAjusteInTotals && r.IsAjuste {
		return false
	}
	if policy.SmallDeltaCutoffMinutes > 0 && abs(r.DeltaMinutes) <= policy.SmallDeltaCutoffMinutes {
		return false
	}
	return true
}

// mostFrequentName picks the display name written most often for one ID.
// Ties go to the spelling seen first. Every other distinct spelling becomes
// an alternative, ordered by descending frequency.
func mostFrequentName(records []model.Record) (string, []string) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var names []string

	for i, r := range records {
		name := strings.TrimSpace(r.Colaborador)
		if name == "" {
			continue
		}
		if _, ok := counts[name]; !ok {
			firstSeen[name] = i
			names = append(names, name)
		}
		counts[name]++
	}

	if len(names) == 0 {
		return "", nil
	}

	sort.SliceStable(names, func(a, b int) bool {
		if counts[names[a]] != counts[names[b]] {
			return counts[names[a]] > counts[names[b]]
		}
		return firstSeen[names[a]] < firstSeen[names[b]]
	})

	return names[0], names[1:]
}

// sortSummaries orders by numeric ID when every ID parses as an integer and
// falls back to lexicographic order for the whole set otherwise. The two
// orders are never mixed within one sort.
func sortSummaries(summaries []model.Summary) {
	numeric := make(map[string]int, len(summaries))
	allNumeric := true
	for _, s := range summaries {
		n, err := strconv.Atoi(s.ID)
		if err != nil {
			allNumeric = false
			break
		}
		numeric[s.ID] = n
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		if allNumeric {
			return numeric[summaries[a].ID] < numeric[summaries[b].ID]
		}
		return summaries[a].ID < summaries[b].ID
	})
}

// CalculateGlobalStats derives the dataset-wide rollup: one pass over the
// records for raw totals and classification occurrences, plus the adjusted
// grand total summed from the summaries. Inputs are read-only.
func CalculateGlobalStats(records []model.Record, summaries []model.Summary) model.GlobalStats {
	stats := model.GlobalStats{
		TotalColaboradores: len(summaries),
		TotalRecords:       len(records),
		ByClassificacao:    make(map[string]int),
	}

	for _, r := range records {
		stats.TotalBrutoMinutes += r.DeltaMinutes

		if r.IsMissing {
			stats.TotalSemDados++
		}
		if r.ParseError {
			stats.TotalParseErrors++
		}
		if r.IsAjuste {
			stats.TotalAjuste++
		}

		label := strings.TrimSpace(r.Classificacao)
		if label == "" {
			label = model.NaoInformado
		}
		stats.ByClassificacao[label]++

		switch Classify(r.Classificacao) {
		case BucketHoraExtra:
			stats.CountHoraExtra++
		case BucketAtraso:
			stats.CountAtraso++
		case BucketNormal:
			stats.CountNormal++
		default:
			stats.CountOutros++
		}
	}

	for _, s := range summaries {
		stats.TotalAjustadoMinutes += s.AdjustedTotalMinutes
	}

	return stats
}

// TopPositive returns up to n summaries with positive adjusted totals,
// largest first. The input slice is left untouched.
func TopPositive(summaries []model.Summary, n int) []model.Summary {
	var top []model.Summary
	for _, s := range summaries {
		if s.AdjustedTotalMinutes > 0 {
			top = append(top, s)
		}
	}
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].AdjustedTotalMinutes > top[b].AdjustedTotalMinutes
	})
	return clamp(top, n)
}

// TopNegative returns up to n summaries with negative adjusted totals, most
// negative first.
func TopNegative(summaries []model.Summary, n int) []model.Summary {
	var top []model.Summary
	for _, s := range summaries {
		if s.AdjustedTotalMinutes < 0 {
			top = append(top, s)
		}
	}
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].AdjustedTotalMinutes < top[b].AdjustedTotalMinutes
	})
	return clamp(top, n)
}

func clamp(summaries []model.Summary, n int) []model.Summary {
	if n >= 0 && len(summaries) > n {
		return summaries[:n]
	}
	return summaries
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
