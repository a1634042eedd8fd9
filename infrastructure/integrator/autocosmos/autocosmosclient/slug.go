package autocosmosclient

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// slugAfterPrefix devuelve el segmento final de href cuando tiene exactamente
// un segmento de slug después del prefijo
func slugAfterPrefix(href, prefix string) (string, bool) {
	if !strings.HasPrefix(href, prefix) {
		return "", false
	}

	slug := strings.TrimSuffix(strings.TrimPrefix(href, prefix), "/")
	if slug == "" || !slugPattern.MatchString(slug) {
		return "", false
	}

	return slug, true
}

func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// titleFromSlug convierte "land-rover" en "Land Rover" para los enlaces que
// no traen texto legible
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
