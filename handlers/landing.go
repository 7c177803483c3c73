package handlers

import (
	"net/http"

	"nko_site_go/middleware"
	"nko_site_go/services"
	"nko_site_go/templates/pages"
	"nko_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the marketing page with the visitor's form state and
// any notifications still pending for them
func LandingHandler(c echo.Context) error {
	cfg := appConfig(c)
	content := services.SiteContent()

	data := pages.LandingData{
		SEO:        GetSEO("landing", cfg.AppURL).WithOGImage(content.HeroImage),
		Content:    content,
		StructData: landingStructuredData(cfg.AppURL, content),
		Form:       partials.LeadFormData{CSRFToken: middleware.GetCSRFToken(c)},
	}
	if visitor := middleware.GetVisitor(c); visitor != nil {
		data.Form.Snapshot = visitor.Flow.Snapshot()
		data.Toasts = visitor.Toasts.Drain()
	}

	return render(c, http.StatusOK, pages.Landing(data))
}
