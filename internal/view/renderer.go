// Package view renders the landing page.  Templates are embedded in the
// binary and executed through echo's Renderer interface.
package view

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/catalog"
	"github.com/iliyamo/party-bliss/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name of the landing page template.
const PageTemplate = "page.html"

// AckMessage is shown after an accepted enquiry.
const AckMessage = "🎉 Thanks! We received your enquiry. We'll get back to you shortly."

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"currency": Currency,
		"price":    Price,
		"skeleton": func(n int) []int { return make([]int, n) },
		"packageName": func(id string) string {
			if p, ok := model.FindPackage(id); ok {
				return p.Name
			}
			return id
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// PageData is everything the landing page template reads.
type PageData struct {
	Year       int
	Nav        []model.Section
	Stats      []model.Stat
	HeroImage  string
	Packages   []model.Package
	Addons     []model.Addon
	Moments    []string
	FAQs       []model.FAQ
	Shop       catalog.State
	Booking    booking.Snapshot
	AckMessage string
	Notice     string
	Venue      model.Venue
	JSONLD     template.JS
}

// NewPageData assembles the view model.  notice is a blocking message such
// as the throttle wait notice; it may be empty.
func NewPageData(snap booking.Snapshot, shop catalog.State, notice string, now time.Time) PageData {
	return PageData{
		Year:       now.Year(),
		Nav:        model.NavSections,
		Stats:      model.HeroStats,
		HeroImage:  model.HeroImage,
		Packages:   model.Packages,
		Addons:     model.Addons,
		Moments:    model.Moments,
		FAQs:       model.FAQs,
		Shop:       shop,
		Booking:    snap,
		AckMessage: AckMessage,
		Notice:     notice,
		Venue:      model.PartyBliss,
		JSONLD:     EventJSONLD(model.PartyBliss),
	}
}

type ldPlace struct {
	Type    string `json:"@type"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ldOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ldEvent struct {
	Context             string         `json:"@context"`
	Type                string         `json:"@type"`
	Name                string         `json:"name"`
	EventStatus         string         `json:"eventStatus"`
	EventAttendanceMode string         `json:"eventAttendanceMode"`
	StartDate           string         `json:"startDate"`
	Location            ldPlace        `json:"location"`
	Organizer           ldOrganization `json:"organizer"`
}

// EventJSONLD returns the schema.org Event document embedded for search
// engines.
func EventJSONLD(v model.Venue) template.JS {
	doc := ldEvent{
		Context:             "https://schema.org",
		Type:                "Event",
		Name:                v.EventName,
		EventStatus:         "https://schema.org/EventScheduled",
		EventAttendanceMode: "https://schema.org/OfflineEventAttendanceMode",
		StartDate:           v.StartDate,
		Location:            ldPlace{Type: "Place", Name: v.PlaceName, Address: v.Address},
		Organizer:           ldOrganization{Type: "Organization", Name: v.Business, URL: v.URL},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(b)
}
