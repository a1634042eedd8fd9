package bulletin

import (
	"testing"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	months := SpanishMonthNames()

	tests := []struct {
		name       string
		text       string
		sourceName string
		expected   domain.Period
	}{
		{
			name: "Dos menciones mes-año - gana la segunda (mes de datos, no de publicación)",
			text: "Ciudad de México, a 10 de noviembre de 2025.\n" +
				"Se presentan las cifras de octubre de 2025 del registro administrativo.",
			sourceName: "raiavl_2025_11.pdf",
			expected:   domain.Period{Year: 2025, Month: 10},
		},
		{
			name:       "Una sola mención - se usa esa",
			text:       "Cifras de septiembre de 2024.",
			sourceName: "boletin.pdf",
			expected:   domain.Period{Year: 2024, Month: 9},
		},
		{
			name:       "Mención sin la preposición de",
			text:       "Reporte correspondiente a Agosto 2025",
			sourceName: "boletin.pdf",
			expected:   domain.Period{Year: 2025, Month: 8},
		},
		{
			name: "Segunda mención cruza el año - se confía en la segunda tal cual",
			text: "a 12 de enero de 2026\n" +
				"cifras de diciembre de 2025",
			sourceName: "raiavl_2026_01.pdf",
			expected:   domain.Period{Year: 2025, Month: 12},
		},
		{
			name:       "Sin menciones - fallback por nombre de archivo restando un mes",
			text:       "texto sin fechas",
			sourceName: "raiavl_2025_07.pdf",
			expected:   domain.Period{Year: 2025, Month: 6},
		},
		{
			name:       "Fallback con publicación en enero - retrocede a diciembre del año anterior",
			text:       "",
			sourceName: "raiavl_2025_01.pdf",
			expected:   domain.Period{Year: 2024, Month: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := resolvePeriod(tt.text, tt.sourceName, months)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, period)
		})
	}
}

func TestResolvePeriod_Undetermined(t *testing.T) {
	period, err := resolvePeriod("texto sin fechas", "boletin.pdf", SpanishMonthNames())

	require.Error(t, err)

	var undetermined *PeriodUndeterminedError
	require.ErrorAs(t, err, &undetermined)
	assert.Equal(t, "boletin.pdf", undetermined.SourceName)
	assert.Equal(t, domain.Period{}, period)
}
