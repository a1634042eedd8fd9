package bulletin

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// filenamePattern reconoce el token YYYY_MM en nombres como raiavl_2025_11
var filenamePattern = regexp.MustCompile(`(\d{4})_(\d{2})`)

// resolvePeriod determina el período de datos del boletín.
//
// Los boletines mencionan primero la fecha de publicación ("México, D.F., a
// 10 de noviembre de 2025") y después el mes de los datos ("cifras de Octubre
// de 2025"), así que cuando hay dos o más menciones mes-año gana la segunda.
// Con una sola mención se usa esa. Sin menciones se cae al nombre de archivo:
// el token YYYY_MM es el mes de publicación y el boletín se publica un mes
// después del período de datos, por lo que se resta un mes (enero retrocede a
// diciembre del año anterior).
func resolvePeriod(text, sourceName string, months map[string]int) (domain.Period, error) {
	matches := monthYearPattern(months).FindAllStringSubmatch(strings.ToLower(text), -1)

	var pick []string
	switch {
	case len(matches) >= 2:
		pick = matches[1]
	case len(matches) == 1:
		pick = matches[0]
	}

	if pick != nil {
		year, err := strconv.Atoi(pick[2])
		if err == nil {
			return domain.Period{Year: year, Month: months[pick[1]]}, nil
		}
	}

	if m := filenamePattern.FindStringSubmatch(sourceName); m != nil {
		year, _ := strconv.Atoi(m[1])
		publicationMonth, _ := strconv.Atoi(m[2])

		if publicationMonth <= 1 {
			return domain.Period{Year: year - 1, Month: 12}, nil
		}
		return domain.Period{Year: year, Month: publicationMonth - 1}, nil
	}

	return domain.Period{}, &PeriodUndeterminedError{SourceName: sourceName}
}

// monthYearPattern arma el patrón `<mes> [de] <año>` a partir de la tabla de
// meses de la configuración. Los nombres se ordenan por longitud descendente
// para que un nombre que sea prefijo de otro no gane por accidente.
func monthYearPattern(months map[string]int) *regexp.Regexp {
	names := make([]string, 0, len(months))
	for name := range months {
		names = append(names, regexp.QuoteMeta(strings.ToLower(name)))
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	return regexp.MustCompile(`(` + strings.Join(names, "|") + `)\s+(?:de\s+)?(\d{4})`)
}
