package middleware

import "github.com/labstack/echo/v4"

const sessionKey = "session_id"

// SessionID returns the form instance id attached by the Session middleware,
// or "" when the middleware did not run.
func SessionID(c echo.Context) string {
	if v, ok := c.Get(sessionKey).(string); ok {
		return v
	}
	return ""
}

// clientID identifies the caller for rate limiting: the session id when
// present, "anon" otherwise.
func clientID(c echo.Context) string {
	if id := SessionID(c); id != "" {
		return id
	}
	return "anon"
}
