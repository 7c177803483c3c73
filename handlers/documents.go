package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"nko_site_go/middleware"
	"nko_site_go/services"

	"github.com/labstack/echo/v4"
)

const documentURLTTL = 15 * time.Minute

// DocumentDownloadHandler serves a sample document. Bucket-backed documents are
// served through a short-lived presigned URL, local ones are streamed.
func DocumentDownloadHandler(c echo.Context) error {
	doc, ok := services.FindSampleDocument(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Документ не найден")
	}

	store := services.Documents
	if store == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Документы временно недоступны")
	}

	ctx := c.Request().Context()
	log := middleware.GetLogger(c).With("document", doc.Slug)

	if store.Remote() {
		signedURL, err := store.SignedURL(ctx, doc.FileName, documentURLTTL)
		if err != nil {
			log.Errorw("failed to sign document URL", "error", err)
			return echo.NewHTTPError(http.StatusBadGateway, "Не удалось получить документ")
		}
		return c.Redirect(http.StatusFound, signedURL)
	}

	rc, contentType, err := store.Open(ctx, doc.FileName)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			log.Warnw("sample document missing from store", "file", doc.FileName)
			return echo.NewHTTPError(http.StatusNotFound, "Документ не найден")
		}
		log.Errorw("failed to open document", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Не удалось получить документ")
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.Stream(http.StatusOK, contentType, rc)
}
