package api

import (
	"log"
	"net/http"
)

const sessionCookieName = "id"

// HandleBeginRegistration handles GET requests that start a passwordless
// registration ceremony for a new user.
func (h *Handler) HandleBeginRegistration(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	name := r.URL.Query().Get("name")
	if email == "" || name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing query parameter 'email' or 'name'")
		return
	}

	options, err := h.auth.BeginRegistration(email, name)
	if err != nil {
		log.Printf("ERROR: Registration challenge for '%s' failed: %v", email, err)
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, options)
}

// HandleFinishRegistration handles POST requests that complete a registration
// ceremony with the authenticator's attestation response.
func (h *Handler) HandleFinishRegistration(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing query parameter 'email'")
		return
	}

	if err := h.auth.FinishRegistration(email, r); err != nil {
		log.Printf("ERROR: Registration for '%s' failed: %v", email, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleBeginSignIn handles GET requests that start a sign-in ceremony for a
// registered user.
func (h *Handler) HandleBeginSignIn(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing query parameter 'email'")
		return
	}

	options, err := h.auth.BeginLogin(email)
	if err != nil {
		log.Printf("ERROR: Sign-in challenge for '%s' failed: %v", email, err)
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, options)
}

// HandleFinishSignIn handles POST requests that complete a sign-in ceremony.
// On success the session token is set as an HTTP-only cookie.
func (h *Handler) HandleFinishSignIn(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing query parameter 'email'")
		return
	}

	session, err := h.auth.FinishLogin(email, r)
	if err != nil {
		log.Printf("ERROR: Sign-in for '%s' failed: %v", email, err)
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
