package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/party-bliss/internal/session"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "pb_session"

// Session returns a middleware that attaches a form instance id to every
// request.  A valid session cookie keeps its id; a missing, expired or
// tampered cookie is replaced by a fresh one.  Handlers read the id with
// SessionID.
func Session(tokens *session.Tokens, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
				if id, err := tokens.Parse(ck.Value); err == nil {
					c.Set(sessionKey, id)
					return next(c)
				}
			}

			id := session.NewID()
			raw, exp, err := tokens.Issue(id)
			if err != nil {
				c.Logger().Errorf("[session] issue token: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session unavailable"})
			}
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    raw,
				Path:     "/",
				Expires:  exp,
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionKey, id)
			return next(c)
		}
	}
}
