package booking

import (
	"regexp"
	"strings"

	"github.com/iliyamo/party-bliss/internal/model"
)

// Form field names, as used in error maps, JSON patches and HTML inputs.
const (
	FieldName     = "name"
	FieldLastname = "lastname"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldGuests   = "guests"
	FieldPackage  = "package"
	FieldAddons   = "addons"
	FieldNotes    = "notes"
	FieldAgree    = "agree"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	// +60 / 60 / 0 prefix, then a subscriber number starting 1-9.
	phonePattern = regexp.MustCompile(`^(?:\+?60|0)[1-9]\d{7,9}$`)
)

// Errors maps a field name to a human-readable message.  An empty map means
// the form can be submitted.
type Errors map[string]string

// Empty reports whether there are no errors.
func (e Errors) Empty() bool { return len(e) == 0 }

// Clone returns an independent copy; a nil receiver yields an empty map.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate checks every field rule and reports all failures at once.
func Validate(f model.BookingForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = "Valid email required"
	}
	if !phonePattern.MatchString(f.Phone) {
		errs[FieldPhone] = "Valid Malaysian phone required"
	}
	if f.Date == "" {
		errs[FieldDate] = "Date required"
	}
	if f.Time == "" {
		errs[FieldTime] = "Time required"
	}
	if f.Guests < 1 {
		errs[FieldGuests] = "At least 1 guest"
	}
	if !f.Agree {
		errs[FieldAgree] = "Please accept the terms"
	}
	return errs
}
