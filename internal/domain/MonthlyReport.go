package domain

import (
	"fmt"
	"time"
)

// Period identifica el mes de datos (no el mes de publicación) de un boletín
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// String devuelve el período en formato YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Valid indica si el período cae dentro de los límites de sanidad (mes 1-12, año >= 2000)
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2000
}

// MetricTriple agrupa los tres totales nacionales de un boletín RAIAVL
type MetricTriple struct {
	Sales      int `json:"sales"`
	Production int `json:"production"`
	Exports    int `json:"exports"`
}

// IsZero indica si ninguna de las tres métricas fue encontrada
func (t MetricTriple) IsZero() bool {
	return t.Sales == 0 && t.Production == 0 && t.Exports == 0
}

// VariationTriple agrupa las variaciones anuales porcentuales por métrica
type VariationTriple struct {
	Sales      float64 `json:"sales"`
	Production float64 `json:"production"`
	Exports    float64 `json:"exports"`
}

// MonthlyReport representa el reporte mensual estructurado extraído de un boletín RAIAVL.
// Se construye una sola vez por documento y no se muta después del ensamblado.
type MonthlyReport struct {
	Period       Period          `json:"period"`
	Monthly      MetricTriple    `json:"monthly"`
	YearToDate   MetricTriple    `json:"year_to_date"`
	YearOverYear VariationTriple `json:"year_over_year_pct"`
	BrandRows    []BrandRow      `json:"brand_rows"`
	// Warnings anota condiciones sospechosas (período fuera de rango, filas
	// incompletas) sin convertirlas en error
	Warnings   []string `json:"warnings,omitempty"`
	SourceName string   `json:"source_name,omitempty"`
}

// MonthlyReportEntry representa un reporte mensual almacenado en el banco
type MonthlyReportEntry struct {
	ID        int64          `json:"id"`
	Period    string         `json:"period"` // Período en formato YYYY-MM
	Report    *MonthlyReport `json:"report"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
