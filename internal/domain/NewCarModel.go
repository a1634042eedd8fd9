package domain

import "time"

// NewCarModel representa un modelo de auto nuevo con precio de lista del catálogo Autocosmos
type NewCarModel struct {
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	BodyType      VehicleType     `json:"body_type,omitempty"`
	BasePriceMXN  float64         `json:"base_price_mxn,omitempty"`
	Versions      []NewCarVersion `json:"versions,omitempty"`
	Engine        string          `json:"engine,omitempty"`
	Transmission  Transmission    `json:"transmission,omitempty"`
	FuelType      FuelType        `json:"fuel_type,omitempty"`
	OriginCountry string          `json:"origin_country,omitempty"`
	Source        string          `json:"source"`
	ScrapedAt     *time.Time      `json:"scraped_at,omitempty"`
}

// NewCarVersion representa una versión específica de un modelo nuevo
type NewCarVersion struct {
	Name         string       `json:"name"`
	PriceMXN     float64      `json:"price_mxn"`
	Engine       string       `json:"engine,omitempty"`
	Horsepower   int          `json:"horsepower,omitempty"`
	Transmission Transmission `json:"transmission,omitempty"`
	FuelType     FuelType     `json:"fuel_type,omitempty"`
}

// CatalogModelEntry representa un modelo del catálogo almacenado en el banco
type CatalogModelEntry struct {
	ID        int64        `json:"id"`
	Model     *NewCarModel `json:"model"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
