package domain

// BrandShare representa la participación de una marca en las ventas del mes
type BrandShare struct {
	Brand           string    `json:"brand"`
	Tier            BrandTier `json:"tier"`
	MonthlyUnits    int       `json:"monthly_units"`
	SharePct        float64   `json:"share_pct"`
	YTDUnits        int       `json:"ytd_units"`
	AvgCatalogPrice float64   `json:"avg_catalog_price_mxn,omitempty"`
}

// MarketOverview combina el reporte mensual con el catálogo de precios
// para una vista agregada del mercado
type MarketOverview struct {
	Period           Period              `json:"period"`
	TotalSales       int                 `json:"total_sales"`
	BrandShares      []BrandShare        `json:"brand_shares"`
	BucketCounts     map[PriceBucket]int `json:"bucket_counts,omitempty"`
	CatalogModels    int                 `json:"catalog_models"`
	SalesYoYPct      float64             `json:"sales_yoy_pct"`
	ProductionYoYPct float64             `json:"production_yoy_pct"`
	ExportsYoYPct    float64             `json:"exports_yoy_pct"`
}
