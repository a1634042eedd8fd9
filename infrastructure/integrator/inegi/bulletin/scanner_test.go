package bulletin

import (
	"strings"
	"testing"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// padding evita que la etiqueta caiga dentro de la guarda de pie de página.
// El texto extraído del PDF trae una celda de la tabla por línea, y así se
// arman los fixtures.
func padding(n int) string {
	return strings.Repeat("relleno\n", n)
}

func TestScanMonthlyRow(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.MetricTriple
		found    bool
	}{
		{
			name: "Fila repartida en varias líneas - toma índices 3,4,5 de los tokens filtrados",
			text: "Octubre\n" +
				"120 456\n" +
				"98 765\n" +
				"45 012\n" +
				"130 111\n" +
				"102 334\n" +
				"47 000\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 130111, Production: 102334, Exports: 47000},
			found:    true,
		},
		{
			name: "Filtrado por magnitud - los tokens pequeños nunca entran a la lista",
			text: "Octubre\n" +
				"5\n" +
				"120456\n" +
				"12\n" +
				"98765\n" +
				"45012\n" +
				"3\n" +
				"130111\n" +
				"102334\n" +
				"47000\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 130111, Production: 102334, Exports: 47000},
			found:    true,
		},
		{
			name: "Corte temprano en el encabezado acumulado - no consume tokens posteriores",
			text: "Octubre\n" +
				"120456\n" +
				"98765\n" +
				"45012\n" +
				"130111\n" +
				"102334\n" +
				"47000\n" +
				"Enero-Octubre\n" +
				"999999\n" +
				"888888\n" +
				"777777\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 130111, Production: 102334, Exports: 47000},
			found:    true,
		},
		{
			name: "Menos de seis columnas en la primera ocurrencia - se reintenta con la siguiente",
			text: "Octubre\n" +
				"120456\n" +
				"98765\n" +
				"Enero-Octubre\n" +
				padding(3) +
				"Octubre\n" +
				"220456\n" +
				"198765\n" +
				"145012\n" +
				"230111\n" +
				"202334\n" +
				"147000\n" +
				"Enero-Octubre\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 230111, Production: 202334, Exports: 147000},
			found:    true,
		},
		{
			name: "Etiqueta solo en el pie del documento - se ignora por la guarda",
			text: padding(3) +
				"Octubre\n" +
				"120456\n" +
				"98765\n" +
				"45012\n",
			found: false,
		},
		{
			name:  "Sin etiqueta - terna en cero",
			text:  "texto sin la fila\n" + padding(12),
			found: false,
		},
		{
			name: "Etiqueta con texto adicional en la línea no cuenta como etiqueta",
			text: "Ventas de Octubre del año\n" +
				"120456\n" +
				"98765\n" +
				"45012\n" +
				"130111\n" +
				"102334\n" +
				"47000\n" +
				padding(12),
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triple, found := scanMonthlyRow(strings.Split(tt.text, "\n"), "Octubre")

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, triple)
		})
	}
}

func TestScanYTDRow(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.MetricTriple
		found    bool
	}{
		{
			name: "Fila acumulada - el piso mayor descarta cifras del tamaño de un mes",
			text: "Enero-Octubre\n" +
				"9500\n" +
				"1204560\n" +
				"987650\n" +
				"450120\n" +
				"1301110\n" +
				"1023340\n" +
				"470000\n" +
				"Fuente: INEGI\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 1301110, Production: 1023340, Exports: 470000},
			found:    true,
		},
		{
			name: "Corte temprano en el marcador de nota al pie",
			text: "Enero-Octubre\n" +
				"1204560\n" +
				"987650\n" +
				"450120\n" +
				"1301110\n" +
				"1023340\n" +
				"470000\n" +
				"1/ Incluye vehículos híbridos\n" +
				"9999990\n" +
				"8888880\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 1301110, Production: 1023340, Exports: 470000},
			found:    true,
		},
		{
			name: "La etiqueta se reconoce sin importar mayúsculas",
			text: "ENERO-OCTUBRE\n" +
				"1204560\n" +
				"987650\n" +
				"450120\n" +
				"1301110\n" +
				"1023340\n" +
				"470000\n" +
				"Fuente: INEGI\n" +
				padding(12),
			expected: domain.MetricTriple{Sales: 1301110, Production: 1023340, Exports: 470000},
			found:    true,
		},
		{
			name:  "Sin fila acumulada - terna en cero",
			text:  "solo texto narrativo\n" + padding(12),
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triple, found := scanYTDRow(strings.Split(tt.text, "\n"), "octubre")

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, triple)
		})
	}
}

func TestNumericTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		floor    int
		expected []int
	}{
		{
			name:     "Espacios internos como separador de millares",
			line:     "1 234 567",
			floor:    1000,
			expected: []int{1234567},
		},
		{
			name:     "Corridas separadas por texto",
			line:     "89 012 unidades, 34 567 unidades",
			floor:    1000,
			expected: []int{89012, 34567},
		},
		{
			name:     "Valores en el piso o por debajo se descartan",
			line:     "1000, 1001, 999",
			floor:    1000,
			expected: []int{1001},
		},
		{
			name:     "Dígito suelto no forma corrida",
			line:     "nota 5 al margen",
			floor:    1000,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numericTokens(tt.line, tt.floor))
		})
	}
}
