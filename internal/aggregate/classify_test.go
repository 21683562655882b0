package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Bucket
	}{
		{name: "hora extra", label: "Hora Extra", want: BucketHoraExtra},
		{name: "horaextra joined", label: "horaextra", want: BucketHoraExtra},
		{name: "extra", label: "EXTRA", want: BucketHoraExtra},
		{name: "overtime english", label: "overtime", want: BucketHoraExtra},
		{name: "atraso", label: "Atraso", want: BucketAtraso},
		{name: "atraso trailing space and case", label: "ATRASO ", want: BucketAtraso},
		{name: "late english", label: "late", want: BucketAtraso},
		{name: "atrasado", label: "atrasado", want: BucketAtraso},
		{name: "normal", label: "Normal", want: BucketNormal},
		{name: "regular", label: "regular", want: BucketNormal},
		{name: "ok", label: "OK", want: BucketNormal},
		{name: "unknown label", label: "Feriado", want: BucketOutros},
		{name: "empty", label: "", want: BucketOutros},
		{name: "accented unknown", label: "Férias", want: BucketOutros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.label))
		})
	}
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "Hora Extra", BucketHoraExtra.String())
	assert.Equal(t, "Atraso", BucketAtraso.String())
	assert.Equal(t, "Normal", BucketNormal.String())
	assert.Equal(t, "Outros", BucketOutros.String())
}
