package security

import "net/http"

// SessionCookieName is the cookie carrying the signed session token. The
// token is the whole of the session state; nothing is kept server-side.
const SessionCookieName = "access_token"

// SetSessionCookie binds a freshly issued token to the response. The cookie
// is HTTP-only; Secure and SameSite are intentionally left unset to match
// the behavior this service replaces.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearSessionCookie removes the session cookie, logging the caller out.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
