package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos/autocosmosclient"
	autocosmosmocks "github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos/mocks"
	repomocks "github.com/rvaldez-mx/auto-market-api/infrastructure/repository/mocks"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/rvaldez-mx/auto-market-api/internal/standardize"
)

func newTestService(ctrl *gomock.Controller) (*Service, *autocosmosmocks.MockAutocosmosIntegrator, *repomocks.MockCatalogRepository) {
	mockIntegrator := autocosmosmocks.NewMockAutocosmosIntegrator(ctrl)
	mockRepo := repomocks.NewMockCatalogRepository(ctrl)

	cfg := &config.Config{}
	cfg.CatalogSync.MaxConcurrentJobs = 1

	service := &Service{
		cfg:               cfg,
		autocosmosService: mockIntegrator,
		catalogRepository: mockRepo,
		standardizer:      standardize.New(),
	}

	return service, mockIntegrator, mockRepo
}

func TestService_SyncCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockIntegrator, mockRepo := newTestService(ctrl)

	t.Run("Sincronización completa con normalización de marca y carrocería", func(t *testing.T) {
		mockIntegrator.EXPECT().
			ListBrands(gomock.Any()).
			Return([]autocosmosclient.BrandLink{{Name: "Nissan", Slug: "nissan"}}, nil)

		mockIntegrator.EXPECT().
			ListBrandModels(gomock.Any(), "nissan").
			Return([]autocosmosclient.ModelLink{
				{Name: "Versa", Slug: "versa"},
				{Name: "Kicks", Slug: "kicks"},
			}, nil)

		mockIntegrator.EXPECT().
			GetModel(gomock.Any(), "nissan", "versa").
			Return(&domain.NewCarModel{Brand: "NISSAN", Model: "Versa Sedan", Year: 2025, BasePriceMXN: 299000}, nil)

		mockIntegrator.EXPECT().
			GetModel(gomock.Any(), "nissan", "kicks").
			Return(nil, errors.New("página no disponible"))

		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(model *domain.NewCarModel) error {
				assert.Equal(t, "Nissan", model.Brand)
				assert.Equal(t, domain.Sedan, model.BodyType)
				return nil
			})

		result, err := service.SyncCatalog(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, result.BrandsVisited)
		assert.Equal(t, 1, result.ModelsSaved)
		assert.Equal(t, 1, result.ModelsFailed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "nissan/kicks")
	})

	t.Run("Error al listar marcas aborta la corrida", func(t *testing.T) {
		mockIntegrator.EXPECT().
			ListBrands(gomock.Any()).
			Return(nil, errors.New("timeout"))

		_, err := service.SyncCatalog(context.Background())
		require.Error(t, err)
	})

	t.Run("Error por marca se acumula sin abortar", func(t *testing.T) {
		mockIntegrator.EXPECT().
			ListBrands(gomock.Any()).
			Return([]autocosmosclient.BrandLink{
				{Name: "Toyota", Slug: "toyota"},
				{Name: "Kia", Slug: "kia"},
			}, nil)

		mockIntegrator.EXPECT().
			ListBrandModels(gomock.Any(), "toyota").
			Return(nil, errors.New("bloqueado"))

		mockIntegrator.EXPECT().
			ListBrandModels(gomock.Any(), "kia").
			Return([]autocosmosclient.ModelLink{}, nil)

		result, err := service.SyncCatalog(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, result.BrandsVisited)
		assert.Equal(t, 0, result.ModelsSaved)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "toyota")
	})
}

func TestService_ListCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockRepo := newTestService(ctrl)

	t.Run("Sin marca lista todo el catálogo", func(t *testing.T) {
		mockRepo.EXPECT().ListAll().Return([]*domain.CatalogModelEntry{{}, {}}, nil)

		entries, err := service.ListCatalog("")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("La marca se normaliza antes de consultar", func(t *testing.T) {
		mockRepo.EXPECT().
			ListByBrand("Chevrolet").
			Return([]*domain.CatalogModelEntry{{}}, nil)

		entries, err := service.ListCatalog("general motors")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestService_GetModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockRepo := newTestService(ctrl)

	t.Run("Modelo encontrado", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByBrandAndModel("Nissan", "Versa", 2025).
			Return(&domain.CatalogModelEntry{ID: 7}, nil)

		entry, err := service.GetModel("nissan", "Versa", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(7), entry.ID)
	})

	t.Run("Modelo inexistente", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByBrandAndModel("Nissan", "Tsuru", 2025).
			Return(nil, nil)

		_, err := service.GetModel("nissan", "Tsuru", 2025)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no encontrado")
	})
}
