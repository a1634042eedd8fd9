// Package textsource convierte el boletín descargado a texto plano. La
// conversión de PDF queda fuera del proceso: se delega al binario pdftotext,
// igual que hace el tablero interno que consumía estos boletines a mano.
package textsource

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// TextExtractor produce el texto plano de un documento, con el orden de
// páginas y los saltos de línea preservados
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}

// PdftotextExtractor invoca el binario pdftotext con -layout para conservar
// la posición de las celdas de tabla
type PdftotextExtractor struct {
	binaryPath string
}

func NewPdftotextExtractor(binaryPath string) *PdftotextExtractor {
	return &PdftotextExtractor{binaryPath: binaryPath}
}

func (e *PdftotextExtractor) ExtractText(ctx context.Context, content []byte) (string, error) {
	// pdftotext lee de stdin y escribe a stdout cuando ambos argumentos son "-"
	cmd := exec.CommandContext(ctx, e.binaryPath, "-layout", "-", "-")
	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "pdftotext falló: %s", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// PlainTextExtractor acepta contenido que ya es texto plano (fixtures y
// boletines convertidos previamente)
type PlainTextExtractor struct{}

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) ExtractText(_ context.Context, content []byte) (string, error) {
	return string(content), nil
}
