package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/internal/usecases/cataloging"
	"github.com/rvaldez-mx/auto-market-api/pkg/apiErrors"
)

// ListCatalog devuelve el catálogo completo o el de una marca (?brand=)
func ListCatalog(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand := r.URL.Query().Get("brand")

		entries, err := service.ListCatalog(brand)
		if err != nil {
			logrus.WithError(err).Error("Error al listar el catálogo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el catálogo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// GetCatalogModel devuelve la ficha de un modelo del catálogo. El año es
// obligatorio vía ?year= porque la misma ficha existe por año-modelo.
func GetCatalogModel(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		brand := params.ByName("brand")
		model := params.ByName("model")

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year < 2000 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El parámetro year es obligatorio y debe ser un año válido", nil)
			return
		}

		entry, err := service.GetModel(brand, model, year)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	}
}
