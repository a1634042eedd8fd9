package domain

// AvailablePeriods representa los períodos mensuales con reporte almacenado
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos en formato YYYY-MM
	Years   []string `json:"years"`   // Lista de años únicos disponibles
	Months  []string `json:"months"`  // Lista de meses únicos disponibles
}
