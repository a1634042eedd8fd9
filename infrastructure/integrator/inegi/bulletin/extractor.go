// Package bulletin extrae el reporte mensual estructurado a partir del texto
// plano de un boletín RAIAVL del INEGI. El paquete es puro: no hace I/O, no
// guarda estado entre llamadas y siempre produce el mismo resultado para el
// mismo texto de entrada.
package bulletin

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// Config define el vocabulario que el extractor consume. El valor es propiedad
// del llamador y se pasa explícitamente en cada llamada; nunca vive como
// estado global del paquete.
type Config struct {
	// BrandVocabulary es la lista ordenada de marcas reconocidas en la tabla
	// de desglose. El orden importa: la primera marca que sea prefijo de la
	// línea gana
	BrandVocabulary []string
	// MonthNames mapea el nombre del mes en minúsculas a su número 1-12
	MonthNames map[string]int
}

// DefaultBrandVocabulary devuelve las marcas publicadas en los boletines
// RAIAVL recientes. Cada llamada devuelve una copia nueva.
func DefaultBrandVocabulary() []string {
	return []string{
		"Acura", "Audi", "Bentley", "BMW", "Chirey", "Ford", "General Motors",
		"Honda", "Hyundai", "Infiniti", "Isuzu", "Jaguar", "KIA", "Land Rover",
		"Lexus", "Lincoln", "Mazda", "Mercedes", "MG Motor", "Mitsubishi",
		"Nissan", "Peugeot", "Porsche", "Renault", "SEAT", "Stellantis",
		"Subaru", "Suzuki", "Toyota", "Volkswagen", "Volvo",
	}
}

// SpanishMonthNames devuelve la tabla de meses en español. Cada llamada
// devuelve una copia nueva.
func SpanishMonthNames() map[string]int {
	return map[string]int{
		"enero": 1, "febrero": 2, "marzo": 3, "abril": 4,
		"mayo": 5, "junio": 6, "julio": 7, "agosto": 8,
		"septiembre": 9, "octubre": 10, "noviembre": 11, "diciembre": 12,
	}
}

// DefaultConfig arma una configuración con el vocabulario estándar
func DefaultConfig() Config {
	return Config{
		BrandVocabulary: DefaultBrandVocabulary(),
		MonthNames:      SpanishMonthNames(),
	}
}

// Extract procesa el texto completo de un boletín y ensambla el reporte
// mensual. sourceName es el nombre del archivo original y solo se usa para el
// fallback de período por nombre de archivo.
//
// Solo la resolución de período es fatal: toda otra sección ausente degrada a
// ceros o a una lista vacía, porque los boletines parciales (sin tabla YTD,
// sin párrafo de variación) ocurren en la práctica y un reporte parcial es
// preferible a fallar.
func Extract(text, sourceName string, cfg Config) (*domain.MonthlyReport, error) {
	period, err := resolvePeriod(text, sourceName, cfg.MonthNames)
	if err != nil {
		return nil, &ExtractionError{SourceName: sourceName, Err: err}
	}

	report := &domain.MonthlyReport{
		Period:     period,
		SourceName: sourceName,
		BrandRows:  []domain.BrandRow{},
	}

	if !period.Valid() {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("período fuera de rango: %s", period))
	}

	lines := strings.Split(text, "\n")
	monthName := displayMonthName(period.Month, cfg.MonthNames)

	if monthName != "" {
		monthly, ok := scanMonthlyRow(lines, monthName)
		if ok {
			report.Monthly = monthly
		} else {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("fila mensual %q no encontrada o con menos de %d columnas", monthName, minRowTokens))
		}

		ytd, ok := scanYTDRow(lines, strings.ToLower(monthName))
		if ok {
			report.YearToDate = ytd
		} else {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("fila acumulada %q no encontrada o con menos de %d columnas", "Enero-"+monthName, minRowTokens))
		}
	}

	report.YearOverYear = domain.VariationTriple{
		Sales:      extractVariation(text, "ventas"),
		Production: extractVariation(text, "producción"),
		Exports:    extractVariation(text, "exportación"),
	}

	if rows := reconstructBrandRows(lines, cfg.BrandVocabulary); len(rows) > 0 {
		report.BrandRows = rows
	}

	return report, nil
}

// displayMonthName devuelve el nombre del mes como aparece en las etiquetas de
// fila del boletín (primera letra mayúscula), o cadena vacía si el número de
// mes no está en la tabla
func displayMonthName(month int, names map[string]int) string {
	for name, number := range names {
		if number == month && name != "" {
			runes := []rune(name)
			return string(unicode.ToUpper(runes[0])) + string(runes[1:])
		}
	}
	return ""
}
