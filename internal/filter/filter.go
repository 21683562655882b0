// Package filter applies operator-chosen predicates over employee summaries.
// Filters never mutate summaries; they return a new list referencing the
// same underlying data.
package filter

import (
	"strings"
	"time"

	"ponto/internal/common"
	"ponto/internal/model"
)

// Classification sentinels that disable the classification predicate.
const (
	AllClassificacoes = "todas"
	allEnglish        = "all"
)

// Criteria is the set of optional, AND-combined predicates. Zero values
// disable their predicate.
type Criteria struct {
	From *time.Time
	To   *time.Time

	// Name matches colaborador or any alternative name, case-insensitive
	// substring.
	Name string

	// ID is a substring match, not exact.
	ID string

	// Classificacao retains summaries with at least one record whose folded
	// label equals this value's folded form. "", "todas" and "all" disable it.
	Classificacao string
}

// Apply filters summaries through every active predicate.
func Apply(summaries []model.Summary, c Criteria) []model.Summary {
	result := summaries

	if term := strings.TrimSpace(c.Name); term != "" {
		result = byName(result, term)
	}
	if term := strings.TrimSpace(c.ID); term != "" {
		result = byID(result, term)
	}
	if label := common.Fold(c.Classificacao); label != "" && label != AllClassificacoes && label != allEnglish {
		result = byClassificacao(result, label)
	}
	if c.From != nil || c.To != nil {
		result = byDateRange(result, c.From, c.To)
	}

	return result
}

func byName(summaries []model.Summary, term string) []model.Summary {
	term = strings.ToLower(term)

	var out []model.Summary
	for _, s := range summaries {
		if strings.Contains(strings.ToLower(s.Colaborador), term) {
			out = append(out, s)
			continue
		}
		for _, alt := range s.AlternativeNames {
			if strings.Contains(strings.ToLower(alt), term) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func byID(summaries []model.Summary, term string) []model.Summary {
	var out []model.Summary
	for _, s := range summaries {
		if strings.Contains(s.ID, term) {
			out = append(out, s)
		}
	}
	return out
}

func byClassificacao(summaries []model.Summary, foldedLabel string) []model.Summary {
	var out []model.Summary
	for _, s := range summaries {
		for _, r := range s.Records {
			if common.Fold(r.Classificacao) == foldedLabel {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// byDateRange keeps summaries with at least one record inside [from, to]
// inclusive. Records without a date always match, so undated rows are never
// silently hidden by a date filter.
func byDateRange(summaries []model.Summary, from, to *time.Time) []model.Summary {
	var out []model.Summary
	for _, s := range summaries {
		for _, r := range s.Records {
			if recordInRange(r, from, to) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func recordInRange(r model.Record, from, to *time.Time) bool {
	if r.Data == nil {
		return true
	}
	if from != nil && r.Data.Before(*from) {
		return false
	}
	if to != nil && r.Data.After(*to) {
		return false
	}
	return true
}
