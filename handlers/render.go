package handlers

import (
	"strings"

	"nko_site_go/config"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render writes an HTML component with the given status
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func appConfig(c echo.Context) *config.Config {
	return c.Get("config").(*config.Config)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
