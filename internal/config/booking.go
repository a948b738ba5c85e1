package config

import "time"

// BookingConfig controls the enquiry form guard.
//
// ThrottleWindow is the minimum time between two accepted submissions of one
// form instance and AckDuration how long the acknowledgment stays visible.
// ThrottleStore selects where acceptance timestamps live: "memory" or
// "redis" (falls back to memory when Redis is unavailable).
type BookingConfig struct {
	ThrottleWindow time.Duration
	AckDuration    time.Duration
	ThrottleStore  string
	ThrottlePrefix string
}

// LoadBookingConfig reads BOOKING_* variables.
func LoadBookingConfig() BookingConfig {
	c := BookingConfig{
		ThrottleWindow: envDur("BOOKING_THROTTLE_WINDOW", 10*time.Second),
		AckDuration:    envDur("BOOKING_ACK_DURATION", 4*time.Second),
		ThrottleStore:  envStr("BOOKING_THROTTLE_STORE", "memory"),
		ThrottlePrefix: envStr("BOOKING_THROTTLE_PREFIX", "pb:throttle"),
	}
	if c.ThrottleWindow <= 0 {
		c.ThrottleWindow = 10 * time.Second
	}
	if c.AckDuration <= 0 {
		c.AckDuration = 4 * time.Second
	}
	return c
}
