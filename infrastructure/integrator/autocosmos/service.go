package autocosmos

import (
	"context"
	"time"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos/autocosmosclient"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type AutocosmosIntegrator interface {
	ListBrands(ctx context.Context) ([]autocosmosclient.BrandLink, error)
	ListBrandModels(ctx context.Context, brandSlug string) ([]autocosmosclient.ModelLink, error)
	GetModel(ctx context.Context, brandSlug, modelSlug string) (*domain.NewCarModel, error)
}

type AutocosmosService struct {
	cfg    *config.Config
	Client autocosmosclient.Client
}

func New(cfg *config.Config, client autocosmosclient.Client) AutocosmosIntegrator {
	return &AutocosmosService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AutocosmosService) ListBrands(ctx context.Context) ([]autocosmosclient.BrandLink, error) {
	return s.Client.GetBrands(ctx)
}

func (s *AutocosmosService) ListBrandModels(ctx context.Context, brandSlug string) ([]autocosmosclient.ModelLink, error) {
	return s.Client.GetBrandModels(ctx, brandSlug)
}

func (s *AutocosmosService) GetModel(ctx context.Context, brandSlug, modelSlug string) (*domain.NewCarModel, error) {
	doc, err := s.Client.GetModelPage(ctx, brandSlug, modelSlug)
	if err != nil {
		return nil, err
	}

	model := parseModelPage(doc, titleFromSlug(brandSlug), titleFromSlug(modelSlug))

	if len(model.Versions) == 0 {
		logrus.WithFields(logrus.Fields{
			"brand": brandSlug,
			"model": modelSlug,
		}).Warn("Modelo sin versiones con precio, se conserva solo la ficha")
	}

	now := time.Now()
	model.ScrapedAt = &now

	return model, nil
}
