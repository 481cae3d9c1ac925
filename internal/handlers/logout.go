package handlers

import "net/http"

// NewLogoutHandler returns the handler for GET /logout. Logging out while
// anonymous is a no-op, not an error.
func NewLogoutHandler(sessions Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.ClearCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
