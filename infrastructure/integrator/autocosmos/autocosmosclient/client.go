package autocosmosclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
)

type Client interface {
	GetBrands(ctx context.Context) ([]BrandLink, error)
	GetBrandModels(ctx context.Context, brandSlug string) ([]ModelLink, error)
	GetModelPage(ctx context.Context, brandSlug, modelSlug string) (*goquery.Document, error)
}

// BrandLink es una marca listada en el catálogo vigente
type BrandLink struct {
	Name string
	Slug string
}

// ModelLink es un modelo listado en la página de una marca
type ModelLink struct {
	Name string
	Slug string
}

type AutocosmosClient struct {
	httpClient *http.Client
	config     *config.Config

	// El sitio no tiene API: se raspa HTML, así que las peticiones se
	// espacian con un delay mínimo para no castigar al servidor
	mu          sync.Mutex
	lastRequest time.Time
}

func NewClient(cfg *config.Config) Client {
	return &AutocosmosClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Autocosmos.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

func (c *AutocosmosClient) GetBrands(ctx context.Context) ([]BrandLink, error) {
	doc, err := c.fetchDocument(ctx, c.config.Autocosmos.BaseURL+"/catalogo")
	if err != nil {
		return nil, err
	}

	var brands []BrandLink
	seen := make(map[string]bool)

	doc.Find(`a[href^="/catalogo/vigente/"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")

		slug, ok := slugAfterPrefix(href, "/catalogo/vigente/")
		if !ok || seen[slug] {
			return
		}

		name := cleanText(link.Text())
		if name == "" {
			// Algunas marcas se listan solo con su logotipo
			name, _ = link.Find("img").Attr("alt")
		}
		if name == "" {
			name = titleFromSlug(slug)
		}

		seen[slug] = true
		brands = append(brands, BrandLink{Name: name, Slug: slug})
	})

	return brands, nil
}

func (c *AutocosmosClient) GetBrandModels(ctx context.Context, brandSlug string) ([]ModelLink, error) {
	doc, err := c.fetchDocument(ctx, fmt.Sprintf("%s/catalogo/vigente/%s", c.config.Autocosmos.BaseURL, brandSlug))
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("/catalogo/vigente/%s/", brandSlug)

	var models []ModelLink
	seen := make(map[string]bool)

	doc.Find(fmt.Sprintf(`a[href^=%q]`, prefix)).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")

		slug, ok := slugAfterPrefix(href, prefix)
		if !ok || seen[slug] {
			return
		}

		name := cleanText(link.Text())
		if name == "" {
			name = titleFromSlug(slug)
		}

		seen[slug] = true
		models = append(models, ModelLink{Name: name, Slug: slug})
	})

	return models, nil
}

func (c *AutocosmosClient) GetModelPage(ctx context.Context, brandSlug, modelSlug string) (*goquery.Document, error) {
	return c.fetchDocument(ctx, fmt.Sprintf("%s/catalogo/vigente/%s/%s", c.config.Autocosmos.BaseURL, brandSlug, modelSlug))
}

func (c *AutocosmosClient) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	c.throttle()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la petición: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la petición a %s falló con status: %s", pageURL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al procesar el HTML: %w", err)
	}

	return doc, nil
}

func (c *AutocosmosClient) throttle() {
	delay := time.Duration(c.config.Autocosmos.RequestDelaySeconds) * time.Second
	if delay <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elapsed := time.Since(c.lastRequest); elapsed < delay {
		time.Sleep(delay - elapsed)
	}
	c.lastRequest = time.Now()
}
