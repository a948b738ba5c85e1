package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/catalog"
	"github.com/iliyamo/party-bliss/internal/model"
)

// PublicHandler serves the read-only endpoints.  None of them touch a form
// instance, so their responses can be cached.
type PublicHandler struct {
	NewLoader func() *catalog.Loader
}

// Packages lists the party packages and the add-ons.
func (h *PublicHandler) Packages(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"packages": model.Packages,
		"addons":   model.Addons,
	})
}

// FAQs lists the questions shown in the accordion.
func (h *PublicHandler) FAQs(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": model.FAQs})
}

// Quote prices a selection without touching any form.  The addon parameter
// may repeat or hold a comma separated list; guests defaults to the included
// head count and must lie in [0, booking.MaxGuests].
func (h *PublicHandler) Quote(c echo.Context) error {
	pkg := c.QueryParam("package")
	if pkg == "" {
		pkg = model.Packages[0].ID
	}

	addons := []string{}
	for _, v := range c.QueryParams()["addon"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				addons = append(addons, id)
			}
		}
	}

	guests := model.DefaultGuests
	if raw := c.QueryParam("guests"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > booking.MaxGuests {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid guests",
				"max":   booking.MaxGuests,
			})
		}
		guests = n
	}

	totals := booking.ComputeTotals(pkg, addons, guests)
	return c.JSON(http.StatusOK, echo.Map{
		"package":      pkg,
		"addons":       addons,
		"guests":       guests,
		"extra_guests": booking.ExtraGuests(guests),
		"totals":       totals,
	})
}

// Catalog loads the shop feed for this request and reports the loader
// state.  A failed load answers 502 so it is never cached.
func (h *PublicHandler) Catalog(c echo.Context) error {
	state := h.NewLoader().Load(c.Request().Context())
	if state.Error != "" {
		return c.JSON(http.StatusBadGateway, state)
	}
	return c.JSON(http.StatusOK, state)
}
