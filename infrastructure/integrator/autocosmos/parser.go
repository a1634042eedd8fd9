package autocosmos

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

var (
	pricePattern  = regexp.MustCompile(`\$\s*([\d,]{4,})`)
	yearPattern   = regexp.MustCompile(`20\d{2}`)
	enginePattern = regexp.MustCompile(`(?i)(\d\.\d\s*[LT]|V\d|\d{3,4}\s*cc)`)
	hpPattern     = regexp.MustCompile(`(?i)(\d+)\s*(hp|cv)`)
)

// El orden importa: palabras cortas como "van" aparecen dentro de otras
// ("advance"), así que las carrocerías más específicas van primero
var bodyTypeByKeyword = []struct {
	keyword string
	value   domain.VehicleType
}{
	{"sedán", domain.Sedan},
	{"sedan", domain.Sedan},
	{"crossover", domain.SUVCompact},
	{"suv", domain.SUVMid},
	{"pickup", domain.Pickup},
	{"hatchback", domain.Hatchback},
	{"minivan", domain.Van},
	{"coupé", domain.Coupe},
	{"coupe", domain.Coupe},
	{"convertible", domain.Coupe},
	{"van", domain.Van},
}

var fuelTypeByKeyword = []struct {
	keyword string
	value   domain.FuelType
}{
	{"híbrido", domain.Hybrid},
	{"hibrido", domain.Hybrid},
	{"eléctrico", domain.Electric},
	{"electrico", domain.Electric},
	{"diesel", domain.Diesel},
	{"diésel", domain.Diesel},
	{"gasolina", domain.Gasoline},
}

// parseModelPage arma el NewCarModel a partir de la página de un modelo. Las
// páginas no tienen estructura garantizada: todo campo que no se encuentre
// queda en su valor cero y el modelo se acepta mientras tenga al menos una
// versión con precio.
func parseModelPage(doc *goquery.Document, brandName, modelName string) *domain.NewCarModel {
	pageText := doc.Text()

	// El h1 suele traer "Marca Modelo Año"
	if title := cleanTitle(doc.Find("h1").First().Text()); title != "" {
		if parts := strings.Fields(title); len(parts) >= 2 {
			brandName = parts[0]
			if yearAt := yearPattern.FindStringIndex(title); yearAt != nil && yearAt[0] > len(parts[0]) {
				modelName = strings.TrimSpace(title[len(parts[0]):yearAt[0]])
			}
		}
	}

	year := time.Now().Year()
	if match := yearPattern.FindString(pageText); match != "" {
		year, _ = strconv.Atoi(match)
	}

	versions := parseVersions(doc)

	model := &domain.NewCarModel{
		Brand:        brandName,
		Model:        modelName,
		Year:         year,
		BodyType:     firstBodyType(pageText),
		Versions:     versions,
		Engine:       enginePattern.FindString(pageText),
		Transmission: firstTransmission(pageText),
		FuelType:     firstFuelType(pageText),
		Source:       "autocosmos",
	}

	for _, version := range versions {
		if model.BasePriceMXN == 0 || version.PriceMXN < model.BasePriceMXN {
			model.BasePriceMXN = version.PriceMXN
		}
	}

	return model
}

// parseVersions recorre las tablas de versiones: una fila con nombre en la
// primera celda y un precio en alguna de las siguientes
func parseVersions(doc *goquery.Document) []domain.NewCarVersion {
	var versions []domain.NewCarVersion
	seen := make(map[string]bool)

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		name := cleanTitle(cells.First().Text())
		if name == "" || seen[name] {
			return
		}

		var price float64
		var rowText strings.Builder
		cells.Each(func(i int, cell *goquery.Selection) {
			text := cell.Text()
			rowText.WriteString(text)
			rowText.WriteString(" ")

			if i > 0 && price == 0 {
				price = parsePrice(text)
			}
		})

		if price == 0 {
			return
		}

		version := domain.NewCarVersion{
			Name:     name,
			PriceMXN: price,
			Engine:   enginePattern.FindString(rowText.String()),
		}
		if hp := hpPattern.FindStringSubmatch(rowText.String()); hp != nil {
			version.Horsepower, _ = strconv.Atoi(hp[1])
		}
		version.Transmission = firstTransmission(rowText.String())

		seen[name] = true
		versions = append(versions, version)
	})

	return versions
}

func parsePrice(text string) float64 {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return price
}

func firstBodyType(text string) domain.VehicleType {
	lower := strings.ToLower(text)
	for _, entry := range bodyTypeByKeyword {
		if strings.Contains(lower, entry.keyword) {
			return entry.value
		}
	}
	return ""
}

func firstTransmission(text string) domain.Transmission {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "cvt"):
		return domain.CVT
	case strings.Contains(lower, "manual"):
		return domain.Manual
	case strings.Contains(lower, "automática"), strings.Contains(lower, "automatica"), strings.Contains(lower, "automatic"):
		return domain.Automatic
	}
	return ""
}

func firstFuelType(text string) domain.FuelType {
	lower := strings.ToLower(text)
	for _, entry := range fuelTypeByKeyword {
		if strings.Contains(lower, entry.keyword) {
			return entry.value
		}
	}
	return ""
}

func cleanTitle(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// titleFromSlug convierte "land-rover" en "Land Rover" como nombre tentativo
// mientras la página no diga algo mejor
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
