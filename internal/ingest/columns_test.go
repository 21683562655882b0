package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "canonical passthrough", header: "Colaborador", want: ColColaborador},
		{name: "accented alias", header: "Funcionário", want: ColColaborador},
		{name: "english alias", header: "employee", want: ColColaborador},
		{name: "uppercase alias", header: "NOME", want: ColColaborador},
		{name: "id alias", header: "Matrícula", want: ColID},
		{name: "classification accented", header: "Classificação", want: ColClassificacao},
		{name: "difference accented", header: "Diferença", want: ColDiferenca},
		{name: "delta alias", header: "delta", want: ColDiferenca},
		{name: "optional column", header: "entrada", want: ColEntrada},
		{name: "unknown header passes through trimmed", header: "  Observações  ", want: "Observações"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapColumn(tt.header))
		})
	}
}

func TestMissingColumns(t *testing.T) {
	t.Run("all present via aliases", func(t *testing.T) {
		headers := []string{"Funcionário", "matricula", "Tipo", "Diferença"}
		assert.Empty(t, missingColumns(headers))
	})

	t.Run("reports every absent required column", func(t *testing.T) {
		headers := []string{"Funcionário", "Observações"}
		assert.Equal(t, []string{ColID, ColClassificacao, ColDiferenca}, missingColumns(headers))
	})

	t.Run("empty header row", func(t *testing.T) {
		assert.Equal(t, RequiredColumns, missingColumns(nil))
	})
}
