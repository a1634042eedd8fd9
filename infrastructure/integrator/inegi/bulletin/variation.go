package bulletin

import (
	"regexp"
	"strconv"
)

// extractVariation busca el primer porcentaje mencionado después de la
// palabra clave en el texto narrativo del boletín ("las ventas ... crecieron
// 12.4%"). Devuelve 0 cuando el boletín no reporta la variación, que es como
// se publica un periodo sin cambio.
func extractVariation(text, keyword string) float64 {
	pattern := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(keyword) + `.*?([+-]?\d+\.?\d*)\s*%`)

	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}

	return value
}
