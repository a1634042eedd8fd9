package bulletin

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

const (
	// minRowTokens es la cantidad mínima de columnas de una fila nacional:
	// ventas, producción y exportación del año anterior seguidas de las del
	// año en curso
	minRowTokens = 6

	// scanWindow es cuántas líneas hacia adelante se leen después de la
	// etiqueta de fila. El texto extraído del PDF reparte una fila de la
	// tabla en varias líneas
	scanWindow = 15

	// footerGuard evita tomar como etiqueta una mención del mes en el
	// índice o pie de las últimas líneas del documento
	footerGuard = 10

	// monthlyFloor y ytdFloor son los pisos de magnitud por tabla. Sin
	// delimitadores de columna, los números de página, superíndices de nota
	// y fechas solo se distinguen de las cifras reales por orden de
	// magnitud
	monthlyFloor = 1000
	ytdFloor     = 10000
)

// digitRun reconoce corridas de dígitos con espacios internos (separador de
// millares del boletín), p. ej. "1 234 567"
var digitRun = regexp.MustCompile(`\d[\d\s]*\d`)

// scanState modela el barrido de una tabla como una máquina de estados
// pequeña, para que la ventana de lectura y las condiciones de término sean
// verificables por separado
type scanState int

const (
	stateSeeking scanState = iota
	stateCollecting
	stateDone
)

// rowScanner describe la búsqueda de una fila numérica etiquetada
type rowScanner struct {
	// isLabel decide si la línea (ya recortada) es la etiqueta de la fila
	isLabel func(trimmed string, index, total int) bool
	// isStop decide si la línea marca el inicio de la siguiente sección;
	// los tokens de la línea de corte sí se consumen, los posteriores no
	isStop func(line string) bool
	floor  int
}

// scan recorre las líneas y devuelve los tokens numéricos de la fila. Si la
// etiqueta encontrada no junta las columnas mínimas se descarta y se sigue
// buscando una ocurrencia posterior; la primera ocurrencia completa gana y el
// barrido termina ahí.
func (s rowScanner) scan(lines []string) ([]int, bool) {
	state := stateSeeking
	var tokens []int
	windowEnd := 0

	for i := 0; i < len(lines) && state != stateDone; i++ {
		switch state {
		case stateSeeking:
			if s.isLabel(strings.TrimSpace(lines[i]), i, len(lines)) {
				state = stateCollecting
				windowEnd = i + scanWindow
				tokens = tokens[:0]
			}

		case stateCollecting:
			tokens = append(tokens, numericTokens(lines[i], s.floor)...)

			if s.isStop(lines[i]) || i >= windowEnd {
				if len(tokens) >= minRowTokens {
					state = stateDone
				} else {
					state = stateSeeking
				}
			}
		}
	}

	if len(tokens) >= minRowTokens {
		return tokens, true
	}
	return tokens, false
}

// scanMonthlyRow localiza la fila del mes (etiquetada solo con el nombre del
// mes, p. ej. "Octubre") y devuelve la terna del año en curso
func scanMonthlyRow(lines []string, monthName string) (domain.MetricTriple, bool) {
	scanner := rowScanner{
		isLabel: func(trimmed string, index, total int) bool {
			return trimmed == monthName && index < total-footerGuard
		},
		isStop: func(line string) bool {
			// "Enero-" marca el encabezado de la sección acumulada
			return strings.Contains(line, "Enero-")
		},
		floor: monthlyFloor,
	}

	return currentYearTriple(scanner.scan(lines))
}

// scanYTDRow localiza la fila acumulada (etiquetada "Enero-<mes>") y devuelve
// la terna acumulada del año en curso
func scanYTDRow(lines []string, lowerMonthName string) (domain.MetricTriple, bool) {
	label := "enero-" + lowerMonthName

	scanner := rowScanner{
		isLabel: func(trimmed string, index, total int) bool {
			return strings.Contains(strings.ToLower(trimmed), label) && index < total-footerGuard
		},
		isStop: func(line string) bool {
			// "1/" es el marcador de nota al pie; "Fuente" es la línea de
			// cita que sigue a la tabla
			return strings.Contains(line, "1/") || strings.Contains(line, "Fuente")
		},
		floor: ytdFloor,
	}

	return currentYearTriple(scanner.scan(lines))
}

// currentYearTriple aplica la convención de seis columnas de la tabla: los
// índices 0-2 son las cifras del año anterior y los índices 3-5 las del año
// en curso (ventas, producción, exportación, en ese orden)
func currentYearTriple(tokens []int, ok bool) (domain.MetricTriple, bool) {
	if !ok {
		return domain.MetricTriple{}, false
	}

	return domain.MetricTriple{
		Sales:      tokens[3],
		Production: tokens[4],
		Exports:    tokens[5],
	}, true
}

// numericTokens extrae de una línea todas las corridas de dígitos, quita los
// espacios internos y descarta los valores que no superan el piso de magnitud
func numericTokens(line string, floor int) []int {
	var values []int

	for _, run := range digitRun.FindAllString(line, -1) {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, run)

		value, err := strconv.Atoi(cleaned)
		if err != nil {
			continue
		}
		if value > floor {
			values = append(values, value)
		}
	}

	return values
}
