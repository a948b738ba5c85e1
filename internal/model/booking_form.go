package model

// DefaultGuests is the guest count a fresh form starts with.
const DefaultGuests = 10

// BookingForm is the mutable enquiry record behind the booking section.  It
// is created with defaults when a visitor opens the page, edited field by
// field, and partially reset after an accepted submission.
//
// Lastname is a decoy field hidden from real visitors; anything typed into it
// marks the submission as automated.
type BookingForm struct {
	Name     string   `json:"name"`
	Lastname string   `json:"lastname"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Guests   int      `json:"guests"`
	Package  string   `json:"package"`
	Addons   []string `json:"addons"`
	Notes    string   `json:"notes"`
	Agree    bool     `json:"agree"`
}

// NewBookingForm returns a form with the page-load defaults: ten guests, the
// first package selected and no add-ons.
func NewBookingForm() BookingForm {
	return BookingForm{
		Guests:  DefaultGuests,
		Package: Packages[0].ID,
		Addons:  []string{},
	}
}

// HasAddon reports whether the add-on id is selected.
func (f BookingForm) HasAddon(id string) bool {
	for _, a := range f.Addons {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a copy whose add-on slice does not alias the original.
func (f BookingForm) Clone() BookingForm {
	out := f
	out.Addons = append([]string(nil), f.Addons...)
	if out.Addons == nil {
		out.Addons = []string{}
	}
	return out
}

// ClearContact empties the contact details and consent after an accepted
// submission.  Date, time, guests, package and add-ons are kept.
func (f *BookingForm) ClearContact() {
	f.Name = ""
	f.Lastname = ""
	f.Email = ""
	f.Phone = ""
	f.Notes = ""
	f.Agree = false
}
