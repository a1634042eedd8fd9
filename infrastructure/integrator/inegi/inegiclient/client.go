package inegiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rvaldez-mx/auto-market-api/internal/config"
)

type Client interface {
	DownloadBulletin(ctx context.Context, year, month int) (*Bulletin, error)
}

// Bulletin es el PDF crudo del boletín mensual junto con el nombre con el que
// INEGI lo publica. El nombre se conserva porque el extractor lo usa como
// último recurso para resolver el período.
type Bulletin struct {
	FileName string
	Content  []byte
}

type INEGIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &INEGIClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.INEGI.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// DownloadBulletin descarga el boletín RAIAVL publicado en el mes indicado.
// year y month son el mes de PUBLICACIÓN, no el mes de datos; el boletín de
// noviembre trae las cifras de octubre.
func (c *INEGIClient) DownloadBulletin(ctx context.Context, year, month int) (*Bulletin, error) {
	fileName := fmt.Sprintf("rm_raiavl%d_%02d.pdf", year, month)
	bulletinURL := fmt.Sprintf("%s/%d/rm_raiavl/%s", c.config.INEGI.BaseURL, year, fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bulletinURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("User-Agent", "auto-market-api/1.0")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la petición: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &BulletinNotPublishedError{Year: year, Month: month}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la petición falló con status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	return &Bulletin{FileName: fileName, Content: content}, nil
}

// BulletinNotPublishedError indica que INEGI aún no publica el boletín del
// mes solicitado. El planificador lo trata como condición normal, no como
// falla.
type BulletinNotPublishedError struct {
	Year  int
	Month int
}

func (e *BulletinNotPublishedError) Error() string {
	return fmt.Sprintf("el boletín de %d-%02d aún no está publicado", e.Year, e.Month)
}
