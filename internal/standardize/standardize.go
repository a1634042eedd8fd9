// Package standardize normaliza nombres de marca, entidades federativas y
// carrocerías entre las distintas fuentes (boletín INEGI, catálogo
// Autocosmos), que escriben los mismos conceptos de maneras distintas.
package standardize

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// maxAliasDistance es la distancia de Levenshtein tolerada al buscar una
// marca con error de dedo ("nisan", "volkswagon")
const maxAliasDistance = 2

var brandAliases = map[string]string{
	"mercedes":       "Mercedes-Benz",
	"mercedes benz":  "Mercedes-Benz",
	"vw":             "Volkswagen",
	"chevy":          "Chevrolet",
	"gm":             "Chevrolet",
	"general motors": "Chevrolet",
	"land-rover":     "Land Rover",
	"landrover":      "Land Rover",
	"alfa-romeo":     "Alfa Romeo",
	"alfaromeo":      "Alfa Romeo",

	// Marcas chinas
	"byd":        "BYD",
	"gwm":        "GWM",
	"great wall": "GWM",
	"jac":        "JAC",
	"mg":         "MG",
	"mg motor":   "MG",
	"changan":    "Changan",
	"chirey":     "Chirey",
	"geely":      "Geely",
	"baic":       "BAIC",
	"haval":      "Haval",

	// Japonesas
	"toyota":     "Toyota",
	"honda":      "Honda",
	"nissan":     "Nissan",
	"mazda":      "Mazda",
	"mitsubishi": "Mitsubishi",
	"subaru":     "Subaru",
	"suzuki":     "Suzuki",
	"infiniti":   "Infiniti",
	"lexus":      "Lexus",
	"acura":      "Acura",
	"isuzu":      "Isuzu",

	// Coreanas
	"hyundai": "Hyundai",
	"kia":     "Kia",
	"genesis": "Genesis",

	// Americanas
	"ford":       "Ford",
	"chevrolet":  "Chevrolet",
	"dodge":      "Dodge",
	"jeep":       "Jeep",
	"ram":        "RAM",
	"lincoln":    "Lincoln",
	"cadillac":   "Cadillac",
	"gmc":        "GMC",
	"buick":      "Buick",
	"chrysler":   "Chrysler",
	"stellantis": "Stellantis",

	// Europeas
	"bmw":        "BMW",
	"audi":       "Audi",
	"volkswagen": "Volkswagen",
	"porsche":    "Porsche",
	"volvo":      "Volvo",
	"mini":       "MINI",
	"seat":       "SEAT",
	"cupra":      "Cupra",
	"skoda":      "Skoda",
	"peugeot":    "Peugeot",
	"renault":    "Renault",
	"citroen":    "Citroën",
	"fiat":       "Fiat",
	"jaguar":     "Jaguar",
	"bentley":    "Bentley",
}

var stateAliases = map[string]string{
	"cdmx":                  "Ciudad de México",
	"ciudad de mexico":      "Ciudad de México",
	"df":                    "Ciudad de México",
	"distrito federal":      "Ciudad de México",
	"edomex":                "Estado de México",
	"edo. mex.":             "Estado de México",
	"estado de mexico":      "Estado de México",
	"nl":                    "Nuevo León",
	"nuevo leon":            "Nuevo León",
	"bc":                    "Baja California",
	"baja california norte": "Baja California",
	"bcs":                   "Baja California Sur",
	"qroo":                  "Quintana Roo",
	"q. roo":                "Quintana Roo",
	"slp":                   "San Luis Potosí",
	"san luis potosi":       "San Luis Potosí",
	"ags":                   "Aguascalientes",
}

var cityStateMap = map[string]string{
	"ciudad de méxico": "Ciudad de México",
	"guadalajara":      "Jalisco",
	"monterrey":        "Nuevo León",
	"puebla":           "Puebla",
	"querétaro":        "Querétaro",
	"queretaro":        "Querétaro",
	"león":             "Guanajuato",
	"leon":             "Guanajuato",
	"mérida":           "Yucatán",
	"merida":           "Yucatán",
	"tijuana":          "Baja California",
	"aguascalientes":   "Aguascalientes",
	"cancún":           "Quintana Roo",
	"cancun":           "Quintana Roo",
	"cuernavaca":       "Morelos",
	"morelia":          "Michoacán",
	"san luis potosí":  "San Luis Potosí",
	"toluca":           "Estado de México",
	"chihuahua":        "Chihuahua",
	"hermosillo":       "Sonora",
}

// vehicleTypeKeywords lista palabras clave y modelos conocidos por carrocería
var vehicleTypeKeywords = []struct {
	vehicleType domain.VehicleType
	keywords    []string
}{
	{domain.Sedan, []string{
		"sedan", "sedán", "sentra", "versa", "jetta", "civic",
		"corolla", "mazda3", "mazda 3", "aveo", "onix",
	}},
	{domain.SUVCompact, []string{
		"kicks", "hr-v", "hrv", "cx-30", "cx30", "venue", "kona",
		"seltos", "tracker", "t-cross", "tcross", "magnite",
	}},
	{domain.SUVMid, []string{
		"cr-v", "crv", "rav4", "tiguan", "cx-5", "cx5", "tucson",
		"sportage", "equinox", "escape", "x-trail", "xtrail",
	}},
	{domain.SUVFull, []string{
		"pilot", "tahoe", "durango", "expedition", "pathfinder",
		"palisade", "telluride", "4runner", "sequoia",
	}},
	{domain.Pickup, []string{
		"pickup", "hilux", "ranger", "colorado", "frontier",
		"np300", "tacoma", "f-150", "f150", "silverado",
	}},
	{domain.Hatchback, []string{
		"hatchback", "hatch", "fit", "polo", "mazda2", "mazda 2",
		"rio", "accent", "i10", "march", "note",
	}},
	{domain.Van, []string{
		"minivan", "sienna", "odyssey", "pacifica",
		"carnival", "transit", "urvan",
	}},
	{domain.Coupe, []string{
		"coupe", "coupé", "mustang", "camaro", "supra",
		"370z", "miata", "mx-5",
	}},
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
var multiSpace = regexp.MustCompile(`\s+`)

type Standardizer struct {
	matcher *ahocorasick.Matcher
	// keywordTypes mapea el índice de patrón del matcher a su carrocería
	keywordTypes []domain.VehicleType
	keywords     []string
	aliasKeys    []string
}

func New() *Standardizer {
	var keywords []string
	var keywordTypes []domain.VehicleType

	for _, group := range vehicleTypeKeywords {
		for _, keyword := range group.keywords {
			keywords = append(keywords, keyword)
			keywordTypes = append(keywordTypes, group.vehicleType)
		}
	}

	aliasKeys := make([]string, 0, len(brandAliases))
	for key := range brandAliases {
		aliasKeys = append(aliasKeys, key)
	}

	return &Standardizer{
		matcher:      ahocorasick.NewStringMatcher(keywords),
		keywordTypes: keywordTypes,
		keywords:     keywords,
		aliasKeys:    aliasKeys,
	}
}

// NormalizeBrand lleva un nombre de marca a su forma canónica. Primero busca
// el alias exacto; si no existe intenta una coincidencia aproximada para
// absorber errores de dedo; como último recurso capitaliza el nombre tal
// cual llegó.
func (s *Standardizer) NormalizeBrand(brand string) string {
	if brand == "" {
		return ""
	}

	cleaned := strings.ToLower(strings.TrimSpace(brand))
	cleaned = nonAlphanumeric.ReplaceAllString(cleaned, "")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")

	if canonical, ok := brandAliases[cleaned]; ok {
		return canonical
	}

	if canonical := s.fuzzyBrand(cleaned); canonical != "" {
		return canonical
	}

	return titleCase(strings.TrimSpace(brand))
}

// fuzzyBrand busca el alias con la menor distancia de Levenshtein dentro del
// umbral. Los alias muy cortos se saltan: a dos caracteres de distancia "gm"
// empataría con casi cualquier cosa.
func (s *Standardizer) fuzzyBrand(cleaned string) string {
	if len(cleaned) < 4 {
		return ""
	}

	bestDistance := maxAliasDistance + 1
	bestKey := ""

	for _, key := range s.aliasKeys {
		if len(key) < 4 {
			continue
		}

		distance := fuzzy.LevenshteinDistance(cleaned, key)
		if distance < bestDistance || (distance == bestDistance && key < bestKey) {
			bestDistance = distance
			bestKey = key
		}
	}

	if bestDistance > maxAliasDistance {
		return ""
	}
	return brandAliases[bestKey]
}

// NormalizeState lleva una entidad federativa a su nombre oficial
func (s *Standardizer) NormalizeState(state string) string {
	if state == "" {
		return ""
	}

	cleaned := strings.ToLower(strings.TrimSpace(state))
	if canonical, ok := stateAliases[cleaned]; ok {
		return canonical
	}

	return titleCase(strings.TrimSpace(state))
}

// StateForCity devuelve la entidad federativa de una ciudad conocida, o
// cadena vacía
func (s *Standardizer) StateForCity(city string) string {
	return cityStateMap[strings.ToLower(strings.TrimSpace(city))]
}

// ClassifyVehicleType clasifica la carrocería a partir del nombre del modelo
// y una pista opcional de la fuente. Todas las palabras clave se buscan en
// una sola pasada; cuando varias coinciden gana la más larga por ser la más
// específica.
func (s *Standardizer) ClassifyVehicleType(modelName, bodyTypeHint string) domain.VehicleType {
	if hint := s.matchKeywords(bodyTypeHint); hint != "" {
		return hint
	}
	return s.matchKeywords(modelName)
}

func (s *Standardizer) matchKeywords(text string) domain.VehicleType {
	if text == "" {
		return ""
	}

	hits := s.matcher.Match([]byte(strings.ToLower(text)))

	best := -1
	for _, hit := range hits {
		if best == -1 || len(s.keywords[hit]) > len(s.keywords[best]) {
			best = hit
		}
	}

	if best == -1 {
		return ""
	}
	return s.keywordTypes[best]
}

// titleCase reemplaza a strings.Title, deprecada, para el caso simple de
// palabras separadas por espacios
func titleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
