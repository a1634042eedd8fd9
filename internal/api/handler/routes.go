package handler

import (
	"net/http"

	"github.com/rvaldez-mx/auto-market-api/internal/api/handler/router"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/analyzing"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/authenticating"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/cataloging"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetReportsRange(service),
		},
		{
			Path:    "/v1/reports/:period",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/reports/:period/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
		{
			Path:    "/v1/reports/:period/overview",
			Method:  http.MethodGet,
			Handler: GetMarketOverview(analyzer),
		},
		{
			Path:    "/v1/reports/import",
			Method:  http.MethodPost,
			Handler: ImportReport(service),
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog",
			Method:  http.MethodGet,
			Handler: ListCatalog(service),
		},
		{
			Path:    "/v1/catalog/:brand/:model",
			Method:  http.MethodGet,
			Handler: GetCatalogModel(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
