package domain

import "strings"

// VehicleType clasifica la carrocería de un vehículo
type VehicleType string

const (
	Sedan      VehicleType = "sedan"
	SUVCompact VehicleType = "suv_compact"
	SUVMid     VehicleType = "suv_mid"
	SUVFull    VehicleType = "suv_full"
	Pickup     VehicleType = "pickup"
	Hatchback  VehicleType = "hatchback"
	Van        VehicleType = "van"
	Coupe      VehicleType = "coupe"
)

// FuelType clasifica el combustible
type FuelType string

const (
	Gasoline FuelType = "gasoline"
	Diesel   FuelType = "diesel"
	Hybrid   FuelType = "hybrid"
	Electric FuelType = "electric"
)

// Transmission clasifica la transmisión
type Transmission string

const (
	Manual    Transmission = "manual"
	Automatic Transmission = "automatic"
	CVT       Transmission = "cvt"
)

// BrandTier clasifica el posicionamiento de una marca
type BrandTier string

const (
	TierVolume  BrandTier = "volume"
	TierPremium BrandTier = "premium"
	TierLuxury  BrandTier = "luxury"
)

// PriceBucket clasifica un precio de lista en rangos del mercado mexicano
type PriceBucket string

const (
	BucketEntry    PriceBucket = "entry"     // < 150k
	BucketEconomy  PriceBucket = "economy"   // 150-300k
	BucketMidRange PriceBucket = "mid_range" // 300-500k
	BucketPremium  PriceBucket = "premium"   // 500-800k
	BucketLuxury   PriceBucket = "luxury"    // 800k-1.2M
	BucketUltra    PriceBucket = "ultra"     // > 1.2M
)

// PriceBucketFor determina el rango de precio para un precio en MXN
func PriceBucketFor(priceMXN float64) PriceBucket {
	switch {
	case priceMXN < 150_000:
		return BucketEntry
	case priceMXN < 300_000:
		return BucketEconomy
	case priceMXN < 500_000:
		return BucketMidRange
	case priceMXN < 800_000:
		return BucketPremium
	case priceMXN < 1_200_000:
		return BucketLuxury
	default:
		return BucketUltra
	}
}

var luxuryBrands = map[string]struct{}{
	"PORSCHE": {}, "LAND ROVER": {}, "LEXUS": {}, "JAGUAR": {}, "MASERATI": {},
	"FERRARI": {}, "LAMBORGHINI": {}, "BENTLEY": {}, "ASTON MARTIN": {}, "ROLLS-ROYCE": {},
}

var premiumBrands = map[string]struct{}{
	"BMW": {}, "MERCEDES-BENZ": {}, "MERCEDES": {}, "AUDI": {}, "VOLVO": {}, "MINI": {},
	"ACURA": {}, "INFINITI": {}, "LINCOLN": {}, "CADILLAC": {}, "GENESIS": {},
}

// BrandTierFor determina el posicionamiento de una marca por su nombre
func BrandTierFor(brand string) BrandTier {
	upper := strings.ToUpper(strings.TrimSpace(brand))

	if _, ok := luxuryBrands[upper]; ok {
		return TierLuxury
	}
	if _, ok := premiumBrands[upper]; ok {
		return TierPremium
	}
	return TierVolume
}
