package inegi

import (
	"context"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/bulletin"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/inegiclient"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/textsource"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

type INEGIIntegrator interface {
	// FetchMonthlyReport descarga el boletín publicado en year/month y lo
	// convierte en el reporte estructurado del mes de datos correspondiente
	FetchMonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error)
	// ExtractFromText procesa texto plano ya convertido, para reprocesos y
	// cargas manuales
	ExtractFromText(text, sourceName string) (*domain.MonthlyReport, error)
}

type INEGIService struct {
	cfg       *config.Config
	Client    inegiclient.Client
	Extractor textsource.TextExtractor
	bulletin  bulletin.Config
}

func New(cfg *config.Config, client inegiclient.Client, extractor textsource.TextExtractor) INEGIIntegrator {
	return &INEGIService{
		cfg:       cfg,
		Client:    client,
		Extractor: extractor,
		bulletin:  bulletin.DefaultConfig(),
	}
}

func (s *INEGIService) FetchMonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error) {
	downloaded, err := s.Client.DownloadBulletin(ctx, year, month)
	if err != nil {
		return nil, err
	}

	text, err := s.Extractor.ExtractText(ctx, downloaded.Content)
	if err != nil {
		return nil, err
	}

	return bulletin.Extract(text, downloaded.FileName, s.bulletin)
}

func (s *INEGIService) ExtractFromText(text, sourceName string) (*domain.MonthlyReport, error) {
	return bulletin.Extract(text, sourceName, s.bulletin)
}
