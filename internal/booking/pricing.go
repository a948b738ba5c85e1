// Package booking holds the enquiry form logic of the landing page: price
// derivation, field validation, the submission guard and the per-visitor form
// instance that ties them together.
package booking

import "github.com/iliyamo/party-bliss/internal/model"

const (
	// IncludedGuests is the number of guests every package covers.
	IncludedGuests = 10
	// ExtraGuestRate is the flat surcharge per guest beyond IncludedGuests.
	ExtraGuestRate = 8
	// MaxGuests bounds the guest count a quote is computed for.
	MaxGuests = 10000
)

// PriceBreakdown is the derived quote shown next to the booking form.
// Grand always equals Base + AddonTotal + GuestTotal.
type PriceBreakdown struct {
	Base       int `json:"base"`
	AddonTotal int `json:"addon_total"`
	GuestTotal int `json:"guest_total"`
	Grand      int `json:"grand"`
}

// ComputeTotals derives the quote for a package, a set of add-ons and a
// guest count.  Unknown package ids price at zero and unknown add-on ids are
// ignored; neither is an error.  An add-on listed twice is charged once.
func ComputeTotals(packageID string, addonIDs []string, guests int) PriceBreakdown {
	base := 0
	if p, ok := model.FindPackage(packageID); ok {
		base = p.Price
	}

	selected := make(map[string]struct{}, len(addonIDs))
	for _, id := range addonIDs {
		selected[id] = struct{}{}
	}
	addonTotal := 0
	for _, a := range model.Addons {
		if _, ok := selected[a.ID]; ok {
			addonTotal += a.Price
		}
	}

	guestTotal := ExtraGuests(guests) * ExtraGuestRate

	return PriceBreakdown{
		Base:       base,
		AddonTotal: addonTotal,
		GuestTotal: guestTotal,
		Grand:      base + addonTotal + guestTotal,
	}
}

// ClampGuests bounds a guest count to [0, MaxGuests].
func ClampGuests(guests int) int {
	switch {
	case guests < 0:
		return 0
	case guests > MaxGuests:
		return MaxGuests
	}
	return guests
}

// ExtraGuests returns how many guests exceed the included allowance.  Counts
// above MaxGuests are priced as MaxGuests.
func ExtraGuests(guests int) int {
	guests = ClampGuests(guests)
	if guests <= IncludedGuests {
		return 0
	}
	return guests - IncludedGuests
}
