package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVariation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keyword  string
		expected float64
	}{
		{
			name:     "Porcentaje en la misma oración",
			text:     "Las ventas al público crecieron 12.4% respecto al año anterior.",
			keyword:  "ventas",
			expected: 12.4,
		},
		{
			name:     "Variación negativa con signo",
			text:     "La exportación registró una caída de -3.7 % en el periodo.",
			keyword:  "exportación",
			expected: -3.7,
		},
		{
			name: "Palabra clave y porcentaje separados por saltos de línea",
			text: "En cuanto a la producción,\n" +
				"el total nacional\n" +
				"aumentó 5.1%.",
			keyword:  "producción",
			expected: 5.1,
		},
		{
			name:     "Sin distinción de mayúsculas",
			text:     "VENTAS: incremento de 8%",
			keyword:  "ventas",
			expected: 8,
		},
		{
			name:     "Gana la primera ocurrencia",
			text:     "Las ventas subieron 2.2% en el mes; en el acumulado las ventas subieron 4.4%.",
			keyword:  "ventas",
			expected: 2.2,
		},
		{
			name:     "Sin mención - cero",
			text:     "El boletín no trae párrafo de variaciones.",
			keyword:  "ventas",
			expected: 0,
		},
		{
			name:     "Palabra clave presente pero sin porcentaje - cero",
			text:     "Las ventas se mantuvieron estables.",
			keyword:  "ventas",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVariation(tt.text, tt.keyword))
		})
	}
}
