package middleware

import (
	"net/http"
	"time"

	"nko_site_go/config"
	"nko_site_go/services"

	"github.com/labstack/echo/v4"
)

// VisitorCookieName holds the visitor id that selects the contact form state
const VisitorCookieName = "nko_visitor"

const visitorKey = "visitor"

// Visitor attaches the caller's in-memory visitor. Safe requests (GET, HEAD)
// only look a known visitor up; a visitor is created on the first state-changing
// request. The cookie is re-issued on every hit so it expires VisitorTTL after
// the last request, as the server side does.
func Visitor(store *services.VisitorStore, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				id = cookie.Value
			}

			var visitor *services.Visitor
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead:
				visitor, _ = store.Get(id)
			default:
				var created bool
				visitor, created = store.GetOrCreate(id)
				if created {
					GetLogger(c).Debugw("new visitor", "visitor", visitor.ID)
				}
			}

			if visitor != nil {
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    visitor.ID,
					Path:     "/",
					Expires:  time.Now().Add(cfg.VisitorTTL),
					HttpOnly: true,
					Secure:   cfg.SecureCookies,
					SameSite: http.SameSiteLaxMode,
				})
				c.Set(visitorKey, visitor)
			}
			return next(c)
		}
	}
}

// GetVisitor returns the visitor attached by the Visitor middleware
func GetVisitor(c echo.Context) *services.Visitor {
	if v, ok := c.Get(visitorKey).(*services.Visitor); ok {
		return v
	}
	return nil
}
