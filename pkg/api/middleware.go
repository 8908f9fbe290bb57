package api

import (
	"log"
	"net/http"
)

// requireSession guards a handler behind a valid session cookie. When the
// handler was built without an auth service the guard is a pass-through.
func (h *Handler) requireSession(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth == nil {
			next(w, r)
			return
		}

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "This endpoint is available to authenticated clients only")
			return
		}
		if _, err := h.auth.Sessions().Validate(cookie.Value); err != nil {
			log.Printf("WARN: Rejected request with invalid session: %v", err)
			WriteJSONError(w, http.StatusUnauthorized, "This endpoint is available to authenticated clients only")
			return
		}

		next(w, r)
	})
}
