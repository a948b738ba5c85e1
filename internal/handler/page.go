package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/catalog"
	"github.com/iliyamo/party-bliss/internal/session"
	"github.com/iliyamo/party-bliss/internal/view"
)

// scalarFields are the form-encoded inputs copied onto the booking form on a
// full submit.  Add-ons and consent are handled separately because browsers
// repeat or omit checkbox values.
var scalarFields = []string{
	booking.FieldName,
	booking.FieldLastname,
	booking.FieldEmail,
	booking.FieldPhone,
	booking.FieldDate,
	booking.FieldTime,
	booking.FieldGuests,
	booking.FieldPackage,
	booking.FieldNotes,
}

// PageHandler renders the landing page and handles its plain HTML form
// posts.  Each render starts a fresh catalog loader bound to the request, so
// a client going away cancels the feed request.
type PageHandler struct {
	Pages     *session.Registry
	NewLoader func() *catalog.Loader
	Now       func() time.Time
}

// Home renders the landing page for the session's form instance.  A
// visitor who has not edited the form yet gets the defaults without an
// instance being created.
func (h *PageHandler) Home(c echo.Context) error {
	snap, ok := currentSnapshot(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	return h.render(c, http.StatusOK, snap, "")
}

// Book applies a full form post and submits it.  The page is re-rendered
// with 200 for accepted and honeypot submissions, 422 when validation fails
// and 429 while the form is throttled.
func (h *PageHandler) Book(c echo.Context) error {
	page, ok := currentPage(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	// no checked boxes means no add-ons
	addons := append([]string{}, form[booking.FieldAddons]...)
	if err := page.Edit(formFields(form), &addons); err != nil {
		status, msg := editStatus(err)
		return h.render(c, status, page.Snapshot(), msg)
	}

	res := page.Submit(c.Request().Context())
	switch res.Outcome {
	case booking.OutcomeThrottled:
		setRetryAfter(c, res.RetryAfter)
		return h.render(c, http.StatusTooManyRequests, page.Snapshot(), res.Notice)
	case booking.OutcomeRejected:
		return h.render(c, http.StatusUnprocessableEntity, page.Snapshot(), "")
	default:
		return h.render(c, http.StatusOK, page.Snapshot(), "")
	}
}

// ChoosePackage handles the "Choose" buttons on the package cards: it selects
// the package and sends the browser to the booking form.
func (h *PageHandler) ChoosePackage(c echo.Context) error {
	page, ok := currentPage(c, h.Pages)
	if !ok {
		return missingSession(c)
	}
	if err := page.Set(booking.FieldPackage, c.FormValue("package")); err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, echo.Map{"error": msg})
	}
	return c.Redirect(http.StatusSeeOther, "/#book")
}

func (h *PageHandler) render(c echo.Context, status int, snap booking.Snapshot, notice string) error {
	shop := h.NewLoader().Load(c.Request().Context())
	data := view.NewPageData(snap, shop, notice, h.now())
	return c.Render(status, view.PageTemplate, data)
}

func (h *PageHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// formFields picks the scalar inputs present in the post.  An unchecked
// consent box is absent from the post, so agree is always written.
func formFields(form url.Values) map[string]string {
	out := make(map[string]string, len(scalarFields)+1)
	for _, f := range scalarFields {
		if vs, ok := form[f]; ok && len(vs) > 0 {
			out[f] = vs[0]
		}
	}
	out[booking.FieldAgree] = strconv.FormatBool(form.Get(booking.FieldAgree) != "")
	return out
}
