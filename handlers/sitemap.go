package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"nko_site_go/services"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap: the landing page and the sample documents
func GetSitemapHandler(c echo.Context) error {
	baseURL := appConfig(c).AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}
	for _, doc := range services.SiteContent().Documents {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/documents/" + doc.Slug,
			ChangeFreq: "monthly",
			Priority:   0.5,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows crawling of the public pages and points to the sitemap
func GetRobotsHandler(c echo.Context) error {
	baseURL := appConfig(c).AppURL
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /lead\n\nSitemap: %s/sitemap.xml\n", baseURL)
	return c.String(http.StatusOK, body)
}
