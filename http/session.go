package http

import (
	"net/http"

	"github.com/fwojciec/smartscrape/form"
)

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "smartscrape_session"

// session returns the caller's session, creating one and setting the
// cookie when the request carries no known ID.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *form.Session {
	var id string
	if c, err := r.Cookie(SessionCookieName); err == nil {
		id = c.Value
	}

	sess, created := s.store.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}
