// Package aggregate groups normalized records per employee and computes
// summary statistics under a configurable bonus/penalty policy.
package aggregate

import "ponto/internal/common"

// Bucket is one of the four classification buckets every record falls into.
type Bucket int

// Classification buckets.
const (
	BucketOutros Bucket = iota
	BucketHoraExtra
	BucketAtraso
	BucketNormal
)

func (b Bucket) String() string {
	switch b {
	case BucketHoraExtra:
		return "Hora Extra"
	case BucketAtraso:
		return "Atraso"
	case BucketNormal:
		return "Normal"
	default:
		return "Outros"
	}
}

// Synonym sets, keyed by folded label. Managers type classifications by hand,
// in two languages.
var (
	horaExtraLabels = labelSet("hora extra", "horaextra", "extra", "overtime")
	atrasoLabels    = labelSet("atraso", "late", "atrasado")
	normalLabels    = labelSet("normal", "regular", "ok")
)

func labelSet(labels ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// Classify maps a free-form classification label to its bucket. Matching is
// accent- and case-insensitive; anything unrecognized is Outros.
func Classify(label string) Bucket {
	folded := common.Fold(label)
	if _, ok := horaExtraLabels[folded]; ok {
		return BucketHoraExtra
	}
	if _, ok := atrasoLabels[folded]; ok {
		return BucketAtraso
	}
	if _, ok := normalLabels[folded]; ok {
		return BucketNormal
	}
	return BucketOutros
}
