package queue

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/party-bliss/internal/booking"
)

func TestNewEnquiryAcceptedEvent(t *testing.T) {
	at := time.Date(2025, 12, 1, 18, 30, 0, 0, time.FixedZone("MYT", 8*3600))
	ev := NewEnquiryAcceptedEvent(booking.Acceptance{
		InstanceID: "inst",
		Package:    "deluxe",
		Guests:     12,
		Date:       "2025-12-20",
		Time:       "14:00",
		Totals:     booking.ComputeTotals("deluxe", []string{"pinata"}, 12),
		AcceptedAt: at,
	})

	assert.Equal(t, []string{}, ev.Addons)
	assert.Equal(t, 399, ev.Base)
	assert.Equal(t, 45, ev.AddonTotal)
	assert.Equal(t, 16, ev.GuestTotal)
	assert.Equal(t, 460, ev.Grand)
	assert.Equal(t, "2025-12-01T10:30:00Z", ev.AcceptedAt)

	body, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "email")
	assert.NotContains(t, string(body), "phone")
}

func TestHandleMessage(t *testing.T) {
	var buf bytes.Buffer
	l := log.New("test")
	l.SetOutput(&buf)

	body, _ := json.Marshal(EnquiryAcceptedEvent{InstanceID: "inst", Package: "basic", Grand: 199})
	require.NoError(t, handleMessage(body, l))
	assert.Contains(t, buf.String(), `"instance_id":"inst"`)

	assert.Error(t, handleMessage([]byte("{"), l))
	assert.Error(t, handleMessage([]byte(`{"package":"basic"}`), l))
}
