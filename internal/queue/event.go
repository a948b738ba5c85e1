// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/party-bliss/internal/booking"
)

// EnquiryAcceptedEvent is published when the booking form accepts an
// enquiry.  It deliberately carries no contact details.
type EnquiryAcceptedEvent struct {
	InstanceID string   `json:"instance_id"`
	Package    string   `json:"package"`
	Addons     []string `json:"addons"`
	Guests     int      `json:"guests"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Base       int      `json:"base"`
	AddonTotal int      `json:"addon_total"`
	GuestTotal int      `json:"guest_total"`
	Grand      int      `json:"grand"`
	AcceptedAt string   `json:"accepted_at"`
}

// NewEnquiryAcceptedEvent converts an acceptance into its wire form.
func NewEnquiryAcceptedEvent(a booking.Acceptance) EnquiryAcceptedEvent {
	addons := a.Addons
	if addons == nil {
		addons = []string{}
	}
	return EnquiryAcceptedEvent{
		InstanceID: a.InstanceID,
		Package:    a.Package,
		Addons:     addons,
		Guests:     a.Guests,
		Date:       a.Date,
		Time:       a.Time,
		Base:       a.Totals.Base,
		AddonTotal: a.Totals.AddonTotal,
		GuestTotal: a.Totals.GuestTotal,
		Grand:      a.Totals.Grand,
		AcceptedAt: a.AcceptedAt.UTC().Format(time.RFC3339),
	}
}
