// Package handler holds the HTTP handlers of the landing page: the rendered
// page with its form posts, the JSON booking API and the read-only catalog
// endpoints.
package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/middleware"
	"github.com/iliyamo/party-bliss/internal/session"
)

// currentPage returns the form instance of the calling session, creating it
// on first use.  It is false only when the session middleware did not run.
func currentPage(c echo.Context, pages *session.Registry) (*booking.Page, bool) {
	id := middleware.SessionID(c)
	if id == "" {
		return nil, false
	}
	return pages.Get(id), true
}

// currentSnapshot reads the session's form without creating an instance;
// a session that never edited its form sees the defaults.
func currentSnapshot(c echo.Context, pages *session.Registry) (booking.Snapshot, bool) {
	id := middleware.SessionID(c)
	if id == "" {
		return booking.Snapshot{}, false
	}
	if page, ok := pages.Lookup(id); ok {
		return page.Snapshot(), true
	}
	return booking.DefaultSnapshot(id), true
}

func missingSession(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session"})
}

// editStatus maps a form edit error to a status code and message.
func editStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrUnknownPackage):
		return http.StatusBadRequest, "unknown package"
	case errors.Is(err, booking.ErrUnknownAddon):
		return http.StatusBadRequest, "unknown add-on"
	case errors.Is(err, booking.ErrUnknownField):
		return http.StatusBadRequest, "unknown field"
	default:
		return http.StatusInternalServerError, "could not update booking"
	}
}

func setRetryAfter(c echo.Context, wait time.Duration) int {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
	return secs
}
