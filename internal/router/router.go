package router // package router registers the HTTP routes of the landing page

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/handler"
)

// RegisterRoutes registers routes that need no session.  At the moment it
// exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSite registers the rendered page and its plain HTML form posts.
// sess attaches the form instance; limiter guards the write routes.
func RegisterSite(e *echo.Echo, h *handler.PageHandler, sess, limiter echo.MiddlewareFunc) {
	e.GET("/", h.Home, sess)
	e.POST("/book", h.Book, sess, limiter)
	e.POST("/book/package", h.ChoosePackage, sess, limiter)
}

// RegisterBooking registers the JSON API over the session's form instance
// under /v1/booking.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, sess, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/booking")
	g.Use(sess)
	g.GET("", h.Get)
	g.PATCH("", h.Patch, limiter)
	g.POST("/addons/:id", h.ToggleAddon, limiter)
	g.POST("/submit", h.Submit, limiter)
}

// RegisterPublic registers the read-only endpoints.  They carry no session
// so their responses are safe to share through the response cache.
func RegisterPublic(e *echo.Echo, h *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/packages", h.Packages, cache)
	e.GET("/v1/faqs", h.FAQs, cache)
	e.GET("/v1/quote", h.Quote, cache)
	e.GET("/v1/catalog", h.Catalog, cache)
}
