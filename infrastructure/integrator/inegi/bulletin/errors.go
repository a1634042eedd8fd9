package bulletin

import "fmt"

// PeriodUndeterminedError indica que ni el texto ni el nombre de archivo
// permitieron determinar el período de datos. Es el único error fatal del
// extractor; el reintento (por ejemplo re-renderizar el PDF) es
// responsabilidad del llamador.
type PeriodUndeterminedError struct {
	SourceName string
}

func (e *PeriodUndeterminedError) Error() string {
	return fmt.Sprintf("no se pudo determinar el período de datos del boletín %q", e.SourceName)
}

// ExtractionError envuelve la falla de un componente del extractor
// identificando el archivo de origen
type ExtractionError struct {
	SourceName string
	Err        error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracción del boletín %q: %v", e.SourceName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
