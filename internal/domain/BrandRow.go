package domain

// BrandRow representa una línea de la tabla de desglose por marca del boletín.
// Los enteros son unidades; las variaciones son porcentajes con signo.
type BrandRow struct {
	Brand               string  `json:"brand"`
	MonthlyPrevious     int     `json:"monthly_previous"`
	MonthlyCurrent      int     `json:"monthly_current"`
	MonthlyVariationPct float64 `json:"monthly_variation_pct"`
	YTDPrevious         int     `json:"ytd_previous"`
	YTDCurrent          int     `json:"ytd_current"`
	YTDVariationPct     float64 `json:"ytd_variation_pct"`
}
