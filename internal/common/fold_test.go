package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accents removed", in: "Classificação", want: "classificacao"},
		{name: "case folded", in: "HORA EXTRA", want: "hora extra"},
		{name: "trimmed", in: "  Atraso  ", want: "atraso"},
		{name: "mixed", in: " Funcionário ", want: "funcionario"},
		{name: "empty", in: "", want: ""},
		{name: "already plain", in: "normal", want: "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}
