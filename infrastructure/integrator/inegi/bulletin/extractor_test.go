package bulletin

import (
	"testing"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBulletin imita la estructura de texto que produce la extracción del
// PDF: fecha de publicación, resumen narrativo, tablas con una celda por
// línea, desglose por marca y pie con fuente
const sampleBulletin = `COMUNICADO DE PRENSA
Ciudad de México, a 10 de noviembre de 2025

REGISTRO ADMINISTRATIVO DE LA INDUSTRIA AUTOMOTRIZ
Cifras de octubre de 2025

En octubre, las ventas al público crecieron 12.4% respecto al mismo mes del
año anterior. La producción aumentó 5.1% y la exportación retrocedió -3.7%.

Ventas, producción y exportación de vehículos ligeros
Octubre
120 456
98 765
45 012
130 111
102 334
47 000
Enero-Octubre
1 204 560
987 650
450 120
1 301 110
1 023 340
470 000
1/ Cifras preliminares
Fuente: INEGI

Ventas por marca
Nissan 45,210 48,900 8.2 450,100 480,200 6.7
Toyota 1200 1350 12.5 15000 16200
General Motors 30,100 28,500 -5.3 310,000 295,000 -4.8

Fuente: INEGI. Registro administrativo de la industria automotriz.
relleno
relleno
relleno
relleno
relleno
relleno
relleno
relleno
relleno
relleno
relleno
`

func TestExtract(t *testing.T) {
	report, err := Extract(sampleBulletin, "raiavl_2025_11.pdf", DefaultConfig())

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, domain.Period{Year: 2025, Month: 10}, report.Period)
	assert.Equal(t, "raiavl_2025_11.pdf", report.SourceName)

	assert.Equal(t, domain.MetricTriple{Sales: 130111, Production: 102334, Exports: 47000}, report.Monthly)
	assert.Equal(t, domain.MetricTriple{Sales: 1301110, Production: 1023340, Exports: 470000}, report.YearToDate)

	assert.Equal(t, domain.VariationTriple{Sales: 12.4, Production: 5.1, Exports: -3.7}, report.YearOverYear)

	require.Len(t, report.BrandRows, 3)
	assert.Equal(t, "Nissan", report.BrandRows[0].Brand)
	assert.Equal(t, 48900, report.BrandRows[0].MonthlyCurrent)
	assert.Equal(t, "Toyota", report.BrandRows[1].Brand)
	assert.Equal(t, 0.0, report.BrandRows[1].YTDVariationPct)
	assert.Equal(t, "General Motors", report.BrandRows[2].Brand)
	assert.Equal(t, -5.3, report.BrandRows[2].MonthlyVariationPct)

	assert.Empty(t, report.Warnings)
}

func TestExtract_Idempotence(t *testing.T) {
	first, err := Extract(sampleBulletin, "raiavl_2025_11.pdf", DefaultConfig())
	require.NoError(t, err)

	second, err := Extract(sampleBulletin, "raiavl_2025_11.pdf", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_EmptyTextWithFilenameFallback(t *testing.T) {
	report, err := Extract("", "raiavl_2025_06.pdf", DefaultConfig())

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, domain.Period{Year: 2025, Month: 5}, report.Period)
	assert.True(t, report.Monthly.IsZero())
	assert.True(t, report.YearToDate.IsZero())
	assert.Equal(t, []domain.BrandRow{}, report.BrandRows)

	// El texto vacío no trae las filas: el reporte parcial lo anota como
	// advertencias, no como error
	assert.Len(t, report.Warnings, 2)
}

func TestExtract_PeriodUndetermined(t *testing.T) {
	report, err := Extract("texto sin fechas", "boletin.pdf", DefaultConfig())

	require.Error(t, err)
	assert.Nil(t, report)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, "boletin.pdf", extraction.SourceName)

	var undetermined *PeriodUndeterminedError
	assert.ErrorAs(t, err, &undetermined)
}

func TestExtract_PartialBulletinDegradesToZeros(t *testing.T) {
	// Boletín de texto libre: período resoluble pero sin tablas ni párrafo
	// de variación con porcentajes
	text := "Avance de resultados de mayo de 2025.\n" +
		"Las cifras completas se publicarán después.\n"

	report, err := Extract(text, "raiavl_2025_06.pdf", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2025, Month: 5}, report.Period)
	assert.True(t, report.Monthly.IsZero())
	assert.True(t, report.YearToDate.IsZero())
	assert.Equal(t, domain.VariationTriple{}, report.YearOverYear)
	assert.Equal(t, []domain.BrandRow{}, report.BrandRows)
	assert.Len(t, report.Warnings, 2)
}
