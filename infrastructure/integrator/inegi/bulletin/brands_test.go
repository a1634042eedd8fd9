package bulletin

import (
	"strings"
	"testing"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructBrandRows(t *testing.T) {
	vocabulary := DefaultBrandVocabulary()

	tests := []struct {
		name     string
		text     string
		expected []domain.BrandRow
	}{
		{
			name: "Fila completa con seis columnas",
			text: "Nissan 45,210 48,900 8.2 450,100 480,200 6.7",
			expected: []domain.BrandRow{
				{
					Brand:               "Nissan",
					MonthlyPrevious:     45210,
					MonthlyCurrent:      48900,
					MonthlyVariationPct: 8.2,
					YTDPrevious:         450100,
					YTDCurrent:          480200,
					YTDVariationPct:     6.7,
				},
			},
		},
		{
			name: "Cinco columnas - la variación acumulada queda en cero",
			text: "Toyota 1200 1350 12.5 15000 16200",
			expected: []domain.BrandRow{
				{
					Brand:               "Toyota",
					MonthlyPrevious:     1200,
					MonthlyCurrent:      1350,
					MonthlyVariationPct: 12.5,
					YTDPrevious:         15000,
					YTDCurrent:          16200,
					YTDVariationPct:     0,
				},
			},
		},
		{
			name:     "Menos de cuatro columnas - la línea se descarta sin emitir fila",
			text:     "Mazda 1200 1350 12.5",
			expected: nil,
		},
		{
			name: "Marca duplicada - gana la primera línea con columnas suficientes",
			text: "Nissan 45,210 48,900 8.2 450,100 480,200 6.7\n" +
				"texto intermedio\n" +
				"Nissan 99,999 99,999 99.9 999,999 999,999 99.9",
			expected: []domain.BrandRow{
				{
					Brand:               "Nissan",
					MonthlyPrevious:     45210,
					MonthlyCurrent:      48900,
					MonthlyVariationPct: 8.2,
					YTDPrevious:         450100,
					YTDCurrent:          480200,
					YTDVariationPct:     6.7,
				},
			},
		},
		{
			name: "Una línea descartada no consume la marca",
			text: "Honda 120\n" +
				"Honda 4,100 4,350 6.1 41,000 43,900 7.1",
			expected: []domain.BrandRow{
				{
					Brand:               "Honda",
					MonthlyPrevious:     4100,
					MonthlyCurrent:      4350,
					MonthlyVariationPct: 6.1,
					YTDPrevious:         41000,
					YTDCurrent:          43900,
					YTDVariationPct:     7.1,
				},
			},
		},
		{
			name: "Marca de dos palabras y variación negativa",
			text: "General Motors 30,100 28,500 -5.3 310,000 295,000 -4.8",
			expected: []domain.BrandRow{
				{
					Brand:               "General Motors",
					MonthlyPrevious:     30100,
					MonthlyCurrent:      28500,
					MonthlyVariationPct: -5.3,
					YTDPrevious:         310000,
					YTDCurrent:          295000,
					YTDVariationPct:     -4.8,
				},
			},
		},
		{
			name: "El orden de salida sigue el orden de aparición en el texto",
			text: "Volvo 900 950 5.6 9,100 9,800 7.7\n" +
				"Audi 2,100 2,250 7.1 21,500 22,900 6.5",
			expected: []domain.BrandRow{
				{
					Brand:               "Volvo",
					MonthlyPrevious:     900,
					MonthlyCurrent:      950,
					MonthlyVariationPct: 5.6,
					YTDPrevious:         9100,
					YTDCurrent:          9800,
					YTDVariationPct:     7.7,
				},
				{
					Brand:               "Audi",
					MonthlyPrevious:     2100,
					MonthlyCurrent:      2250,
					MonthlyVariationPct: 7.1,
					YTDPrevious:         21500,
					YTDCurrent:          22900,
					YTDVariationPct:     6.5,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := reconstructBrandRows(strings.Split(tt.text, "\n"), vocabulary)

			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestReconstructBrandRows_PrefixPriority(t *testing.T) {
	// Con un vocabulario donde una marca es prefijo de otra, gana la que
	// aparece primero en el vocabulario
	vocabulary := []string{"KIA Motors", "KIA"}

	rows := reconstructBrandRows(
		[]string{"KIA Motors 5,100 5,400 5.9 51,000 54,200 6.3"},
		vocabulary,
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "KIA Motors", rows[0].Brand)
}

func TestBrandTokens(t *testing.T) {
	tests := []struct {
		name     string
		rest     string
		expected []float64
	}{
		{
			name:     "El espacio separa columnas, la coma es separador de millares",
			rest:     " 1200 1350 12.5 15000 16200",
			expected: []float64{1200, 1350, 12.5, 15000, 16200},
		},
		{
			name:     "Valores con signo",
			rest:     " 30,100 28,500 -5.3",
			expected: []float64{30100, 28500, -5.3},
		},
		{
			name:     "Sin números",
			rest:     " y otras marcas",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, brandTokens(tt.rest))
		})
	}
}
