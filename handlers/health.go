package handlers

import (
	"net/http"

	"nko_site_go/services"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and a few in-memory gauges
func HealthHandler(store *services.VisitorStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		documents := "none"
		if services.Documents != nil {
			documents = "local"
			if services.Documents.Remote() {
				documents = "r2"
			}
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":    "ok",
			"visitors":  store.Len(),
			"documents": documents,
		})
	}
}
