package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/session"
	"github.com/iliyamo/party-bliss/internal/view"
)

// BookingHandler is the JSON API over the session's form instance.
type BookingHandler struct {
	Pages *session.Registry
}

// bookingPatch is the body of PATCH /v1/booking.  Fields holds scalar
// edits; Addons, when present, replaces the add-on selection.
type bookingPatch struct {
	Fields map[string]string `json:"fields"`
	Addons *[]string         `json:"addons"`
}

// Get returns the current form state with its quote and visible errors.
func (h *BookingHandler) Get(c echo.Context) error {
	snap, ok := currentSnapshot(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	return c.JSON(http.StatusOK, snap)
}

// Patch applies field edits.  An invalid edit leaves the form unchanged.
func (h *BookingHandler) Patch(c echo.Context) error {
	page, ok := currentPage(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	var req bookingPatch
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := page.Edit(req.Fields, req.Addons); err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, echo.Map{"error": msg, "detail": err.Error()})
	}
	return c.JSON(http.StatusOK, page.Snapshot())
}

// ToggleAddon flips one add-on in the selection.
func (h *BookingHandler) ToggleAddon(c echo.Context) error {
	page, ok := currentPage(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	if err := page.ToggleAddon(c.Param("id")); err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, echo.Map{"error": msg})
	}
	return c.JSON(http.StatusOK, page.Snapshot())
}

// Submit runs a submit attempt.  A honeypot submission gets the same answer
// as an untouched form: 200, no acknowledgment and no errors.
func (h *BookingHandler) Submit(c echo.Context) error {
	page, ok := currentPage(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	res := page.Submit(c.Request().Context())
	switch res.Outcome {
	case booking.OutcomeThrottled:
		secs := setRetryAfter(c, res.RetryAfter)
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"error":       "throttled",
			"message":     res.Notice,
			"retry_after": secs,
		})
	case booking.OutcomeRejected:
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":   "validation failed",
			"errors":  res.Errors,
			"booking": page.Snapshot(),
		})
	case booking.OutcomeAccepted:
		return c.JSON(http.StatusOK, echo.Map{
			"message": view.AckMessage,
			"booking": page.Snapshot(),
		})
	default:
		return c.JSON(http.StatusOK, echo.Map{"booking": page.Snapshot()})
	}
}
