package handlers

import (
	"strings"

	"nko_site_go/models"
)

const siteName = "НКО Регистрация"

// SEO configurations for public pages. Canonical and image paths are relative to
// the configured APP_URL.
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Регистрация НКО под ключ | НКО Регистрация",
		Description: "Профессиональная регистрация некоммерческих организаций с 2012 года: фонды, ассоциации, АНО. Подготовка документов, подача в Минюст, гарантия результата.",
		Keywords:    "регистрация НКО, регистрация некоммерческой организации, создание фонда, регистрация ассоциации, устав НКО",
		Canonical:   "/",
		SiteName:    siteName,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "ru_RU",
	},
}

// GetSEO returns the SEO configuration for a page with absolute URLs, or nil
func GetSEO(page, baseURL string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}

	// Return a copy to avoid mutations
	copy := *seo
	copy.Canonical = absoluteURL(baseURL, seo.Canonical)
	copy.OGImage = absoluteURL(baseURL, seo.OGImage)
	return &copy
}

func absoluteURL(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}

// landingStructuredData describes the business as a schema.org LegalService
func landingStructuredData(baseURL string, content *models.SiteContent) map[string]any {
	data := map[string]any{
		"@context":     "https://schema.org",
		"@type":        "LegalService",
		"name":         content.BrandName,
		"description":  content.Tagline,
		"url":          absoluteURL(baseURL, "/"),
		"image":        content.HeroImage,
		"foundingDate": content.FoundedYear,
		"areaServed":   "RU",
	}

	for _, ch := range content.Contacts {
		switch {
		case strings.HasPrefix(ch.Href, "tel:"):
			data["telephone"] = strings.TrimPrefix(ch.Href, "tel:")
		case strings.HasPrefix(ch.Href, "mailto:"):
			data["email"] = strings.TrimPrefix(ch.Href, "mailto:")
		case ch.Href == "":
			data["address"] = map[string]string{
				"@type":         "PostalAddress",
				"streetAddress": ch.Value,
				"description":   ch.Note,
			}
		}
	}

	offers := make([]map[string]any, 0, len(content.Services))
	for _, s := range content.Services {
		offers = append(offers, map[string]any{
			"@type":       "Offer",
			"name":        s.Title,
			"description": s.Description,
		})
	}
	data["makesOffer"] = offers

	return data
}
