package model

// Package is a fixed-price bundled offering shown on the landing page.
//
// Fields:
//  ID       – unique key used by the booking form.
//  Name     – display name.
//  Price    – all-inclusive base price in whole ringgit.
//  Features – ordered list of inclusions.
//  Color    – display color token for the package card.
type Package struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Features []string `json:"features"`
	Color    string   `json:"color"`
}

// Addon is an optional extra charged on top of the package price.
type Addon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Packages is the static package catalog, in display order.
var Packages = []Package{
	{
		ID:       "basic",
		Name:     "Basic",
		Price:    199,
		Features: []string{"2-hr venue", "Table setup", "Music playlist"},
		Color:    "from-pink-200 to-rose-200",
	},
	{
		ID:       "deluxe",
		Name:     "Deluxe",
		Price:    399,
		Features: []string{"3-hr venue", "Balloons & décor", "Custom cake"},
		Color:    "from-violet-200 to-fuchsia-200",
	},
	{
		ID:       "ultimate",
		Name:     "Ultimate",
		Price:    699,
		Features: []string{"4-hr venue", "Live entertainer", "Photo booth"},
		Color:    "from-cyan-200 to-blue-300",
	},
}

// Addons is the static add-on catalog, in display order.
var Addons = []Addon{
	{ID: "facepaint", Name: "Face Painting", Price: 80},
	{ID: "magician", Name: "Magician", Price: 150},
	{ID: "pinata", Name: "Piñata", Price: 45},
	{ID: "candybar", Name: "Candy Bar", Price: 120},
}

// FindPackage looks up a package by id.
func FindPackage(id string) (Package, bool) {
	for _, p := range Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// FindAddon looks up an add-on by id.
func FindAddon(id string) (Addon, bool) {
	for _, a := range Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}
