package bulletin

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// minBrandTokens es el mínimo de columnas para armar una fila de marca:
// mensual anterior, mensual actual, variación mensual y acumulado anterior
const minBrandTokens = 4

// brandNumber reconoce un número de columna de la tabla por marca: dígitos
// con comas de millares y decimal opcional, con signo para variaciones
// negativas. A diferencia de las filas nacionales, aquí el espacio separa
// columnas y nunca forma parte de un número.
var brandNumber = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)

// reconstructBrandRows reconstruye la tabla de ventas por marca a partir del
// texto plano. Cada línea se coteja contra el vocabulario en orden; la
// primera línea con columnas suficientes consume la marca, de modo que las
// menciones posteriores (índice, texto narrativo) no la sobrescriben.
func reconstructBrandRows(lines []string, vocabulary []string) []domain.BrandRow {
	var rows []domain.BrandRow
	consumed := make(map[string]bool, len(vocabulary))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		for _, brand := range vocabulary {
			if consumed[brand] || !strings.HasPrefix(trimmed, brand) {
				continue
			}

			tokens := brandTokens(trimmed[len(brand):])
			if len(tokens) < minBrandTokens {
				break
			}

			rows = append(rows, brandRowFromTokens(brand, tokens))
			consumed[brand] = true
			break
		}
	}

	return rows
}

// brandRowFromTokens mapea las columnas por posición: mensual anterior,
// mensual actual, variación mensual, acumulado anterior, acumulado actual y
// variación acumulada. Las columnas que el texto no conserva quedan en cero.
func brandRowFromTokens(brand string, tokens []float64) domain.BrandRow {
	at := func(index int) float64 {
		if index < len(tokens) {
			return tokens[index]
		}
		return 0
	}

	return domain.BrandRow{
		Brand:               brand,
		MonthlyPrevious:     int(at(0)),
		MonthlyCurrent:      int(at(1)),
		MonthlyVariationPct: at(2),
		YTDPrevious:         int(at(3)),
		YTDCurrent:          int(at(4)),
		YTDVariationPct:     at(5),
	}
}

// brandTokens extrae los números de la porción de línea posterior al nombre
// de la marca
func brandTokens(rest string) []float64 {
	var tokens []float64

	for _, raw := range brandNumber.FindAllString(rest, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			continue
		}
		tokens = append(tokens, value)
	}

	return tokens
}
