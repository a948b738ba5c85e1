package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/party-bliss/internal/model"
)

func validForm() model.BookingForm {
	f := model.NewBookingForm()
	f.Name = "Alex Tan"
	f.Email = "alex@example.com"
	f.Phone = "+60123456789"
	f.Date = "2025-12-01"
	f.Time = "10:00"
	f.Agree = true
	return f
}

func TestValidate_ValidForm(t *testing.T) {
	assert.True(t, Validate(validForm()).Empty())
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	f := model.BookingForm{Guests: 0}
	errs := Validate(f)
	assert.Equal(t, Errors{
		FieldName:   "Name is required",
		FieldEmail:  "Valid email required",
		FieldPhone:  "Valid Malaysian phone required",
		FieldDate:   "Date required",
		FieldTime:   "Time required",
		FieldGuests: "At least 1 guest",
		FieldAgree:  "Please accept the terms",
	}, errs)
}

func TestValidate_NameIsTrimmed(t *testing.T) {
	f := validForm()
	f.Name = "   \t"
	assert.Contains(t, Validate(f), FieldName)
}

func TestValidate_Email(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":           true,
		"alex@example.com":  true,
		"first.last@x.co.uk": true,
		"abc":               false,
		"a@b":               false,
		"a b@c.com":         false,
		"a@@b.com":          false,
		"@b.com":            false,
		"":                  false,
		"a\vb@c.com":        false,
		"a@b\u00a0c.com":    false,
		"a@b.c\ufeffom":     false,
		"\u2028a@b.com":     false,
	}
	for email, ok := range cases {
		f := validForm()
		f.Email = email
		_, failed := Validate(f)[FieldEmail]
		assert.Equal(t, !ok, failed, "email %q", email)
	}
}

func TestValidate_Phone(t *testing.T) {
	cases := map[string]bool{
		"0123456789":    true,
		"+60123456789":  true,
		"60123456789":   true,
		"0312345678":    true,
		"01123456789":   true,
		"12345":         false,
		"0023456789":    false,
		"0123456":       false,
		"+6012345678901": false,
		"012-3456789":   false,
	}
	for phone, ok := range cases {
		f := validForm()
		f.Phone = phone
		_, failed := Validate(f)[FieldPhone]
		assert.Equal(t, !ok, failed, "phone %q", phone)
	}
}

func TestValidate_Guests(t *testing.T) {
	f := validForm()
	f.Guests = 0
	assert.Contains(t, Validate(f), FieldGuests)
	f.Guests = 1
	assert.NotContains(t, Validate(f), FieldGuests)
}

func TestErrors_CloneOfNil(t *testing.T) {
	var e Errors
	c := e.Clone()
	assert.NotNil(t, c)
	assert.True(t, c.Empty())
}
