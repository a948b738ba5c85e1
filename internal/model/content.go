package model

// FAQ is one question/answer pair of the FAQ accordion.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQs lists the accordion entries in display order.
var FAQs = []FAQ{
	{
		Question: "Do you handle food & cake?",
		Answer:   "Yes, our Deluxe and Ultimate packages include a custom cake. We can also arrange catering with dietary accommodations.",
	},
	{
		Question: "Can I bring my own decorations?",
		Answer:   "Absolutely! We’ll coordinate so the setup matches your theme and safety guidelines.",
	},
	{
		Question: "What’s your cancellation policy?",
		Answer:   "Free reschedule up to 7 days prior. Refunds per terms at booking time.",
	},
	{
		Question: "Do you travel to my location?",
		Answer:   "We offer on-site parties within a 30km radius of our venue for an additional logistics fee.",
	},
}

// Stat is a headline figure shown under the hero text.
type Stat struct {
	Value string
	Label string
}

// HeroStats are the figures shown in the hero banner.
var HeroStats = []Stat{
	{Value: "500+", Label: "Happy Parties"},
	{Value: "4.9★", Label: "Avg. Rating"},
	{Value: "24/7", Label: "Support"},
}

// Section is an in-page navigation target.
type Section struct {
	Anchor string
	Label  string
}

// NavSections are the anchors linked from the navbar, in order.
var NavSections = []Section{
	{Anchor: "packages", Label: "Packages"},
	{Anchor: "gallery", Label: "Gallery"},
	{Anchor: "shop", Label: "Shop"},
	{Anchor: "faq", Label: "FAQ"},
}

// HeroImage is the banner photo.
const HeroImage = "https://images.unsplash.com/photo-1531956531700-dc0ee0f1f9a5?q=80&w=2340&auto=format&fit=crop"

// Moments are the gallery photos, served from the public assets directory.
var Moments = []string{
	"/assets/moments/moment-1.jpg",
	"/assets/moments/moment-2.jpg",
	"/assets/moments/moment-3.jpg",
	"/assets/moments/moment-4.jpg",
	"/assets/moments/moment-5.jpg",
	"/assets/moments/moment-6.jpg",
}

// Venue describes the business for the structured event metadata.
type Venue struct {
	Business  string
	PlaceName string
	Address   string
	URL       string
	EventName string
	StartDate string
}

// PartyBliss is the venue advertised by the page.
var PartyBliss = Venue{
	Business:  "PartyBliss",
	PlaceName: "PartyBliss Venue",
	Address:   "123 Joy Avenue, Kuala Lumpur",
	URL:       "https://example.com",
	EventName: "Birthday Party Packages",
	StartDate: "2025-12-01",
}
